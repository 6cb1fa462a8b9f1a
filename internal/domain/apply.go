package domain

import "fmt"

// ApplyMove plays a board move for pl. The move is rejected, with the game
// left untouched, if pl is not to move or the board does not allow it.
// Drops and promotion are not handled here.
func (g *Game) ApplyMove(pl Player, from, to Position) error {
	if !pl.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, pl)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if pl != g.turn {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	if !g.board.IsMovable(pl, from, to) {
		return fmt.Errorf("%w: %s %s -> %s", ErrIllegalMove, pl, from.Square(), to.Square())
	}

	g.history = append(g.history, g.snapshotLocked())

	kind := g.board.cells[from].Kind
	captured, capture := g.board.DoMove(pl, from, to)
	g.moves = append(g.moves, Move{
		Player:   pl,
		From:     from,
		To:       to,
		Kind:     kind,
		Captured: captured,
		Capture:  capture,
	})
	g.turn = g.turn.Opponent()
	return nil
}

// ApplySquares is ApplyMove in KIF coordinates.
func (g *Game) ApplySquares(pl Player, from, to Square) error {
	fp, ok := from.Position()
	if !ok {
		return fmt.Errorf("%w: from=%v", ErrOffBoard, from)
	}
	tp, ok := to.Position()
	if !ok {
		return fmt.Errorf("%w: to=%v", ErrOffBoard, to)
	}
	return g.ApplyMove(pl, fp, tp)
}
