package domain

// NewGameHirate returns the standard initial position (平手), Black to move.
func NewGameHirate() *Game {
	g := NewGame()
	SetupHirate(g.board)
	return g
}

// SetupHirate clears b and places both armies.
func SetupHirate(b *Board) {
	b.Clear()

	set := func(pl Player, k PieceKind, f, r int) {
		p, _ := Square{File: f, Rank: r}.Position()
		b.SetCell(p, &Cell{Kind: k, Owner: pl})
	}

	backRank := [9]PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}

	// Black: back rank 9, rook 28, bishop 88, pawns rank 7.
	for i, k := range backRank {
		set(Black, k, 9-i, 9)
	}
	set(Black, Rook, 2, 8)
	set(Black, Bishop, 8, 8)
	for f := 1; f <= 9; f++ {
		set(Black, Pawn, f, 7)
	}

	// White: back rank 1, rook 82, bishop 22, pawns rank 3.
	for i, k := range backRank {
		set(White, k, 9-i, 1)
	}
	set(White, Rook, 8, 2)
	set(White, Bishop, 2, 2)
	for f := 1; f <= 9; f++ {
		set(White, Pawn, f, 3)
	}
}
