package domain

import "fmt"

const (
	BoardSize  = 9
	NumSquares = BoardSize * BoardSize
)

// Position is a board cell encoded row-major as row*9 + col.
// Row 0 is the far side for Black (rank 1 in KIF terms).
type Position uint8

// NewPosition panics if index is not a board square.
func NewPosition(index int) Position {
	if index < 0 || index >= NumSquares {
		panic(fmt.Sprintf("domain: position index %d out of range", index))
	}
	return Position(index)
}

// FromRowCol returns false when (row, col) is not on the board.
func FromRowCol(row, col int) (Position, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, false
	}
	return Position(row*BoardSize + col), true
}

func (p Position) Index() int { return int(p) }
func (p Position) Row() int   { return int(p) / BoardSize }
func (p Position) Col() int   { return int(p) % BoardSize }

func (p Position) RowCol() (int, int) {
	return p.Row(), p.Col()
}

// Add translates p by (dr, dc). The result is rejected if it falls off the board.
func (p Position) Add(dr, dc int) (Position, bool) {
	return FromRowCol(p.Row()+dr, p.Col()+dc)
}

func (p Position) String() string {
	return fmt.Sprintf("r%dc%d", p.Row(), p.Col())
}
