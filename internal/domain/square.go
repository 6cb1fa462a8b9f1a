package domain

import "fmt"

// Square is a KIF-style coordinate.
// File 1..9 counts from Black's right, Rank 1..9 from White's side.
// Example: Black's pawn starts at 7,7 (７七歩) and moves to 7,6 (７六歩).
type Square struct {
	File int
	Rank int
}

func (sq Square) Valid() bool {
	return sq.File >= 1 && sq.File <= 9 && sq.Rank >= 1 && sq.Rank <= 9
}

// Position maps the square onto the board index; false if off-board.
func (sq Square) Position() (Position, bool) {
	if !sq.Valid() {
		return 0, false
	}
	return FromRowCol(sq.Rank-1, BoardSize-sq.File)
}

func (sq Square) String() string {
	return fmt.Sprintf("%d%d", sq.File, sq.Rank)
}

func (p Position) Square() Square {
	return Square{File: BoardSize - p.Col(), Rank: p.Row() + 1}
}
