package domain

import (
	"errors"
	"testing"
)

func sq(f, r int) Square { return Square{File: f, Rank: r} }

func TestGame_ApplyMoveHirate(t *testing.T) {
	g := NewGameHirate()

	if err := g.ApplySquares(Black, sq(7, 7), sq(7, 6)); err != nil {
		t.Fatalf("７六歩: %v", err)
	}
	if g.Turn() != White {
		t.Fatalf("turn = %v, want white", g.Turn())
	}
	if err := g.ApplySquares(White, sq(3, 3), sq(3, 4)); err != nil {
		t.Fatalf("３四歩: %v", err)
	}
	moves := g.Moves()
	if len(moves) != 2 || moves[0].Kind != Pawn || moves[1].Player != White {
		t.Fatalf("moves = %+v", moves)
	}
}

func TestGame_RejectsWrongTurn(t *testing.T) {
	g := NewGameHirate()
	err := g.ApplySquares(White, sq(3, 3), sq(3, 4))
	if !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}
	if g.Turn() != Black || len(g.Moves()) != 0 {
		t.Fatalf("state changed after rejected move")
	}
}

func TestGame_RejectsIllegalMove(t *testing.T) {
	g := NewGameHirate()
	before := BoardToPiyo(g.Board())

	// pawn two steps
	err := g.ApplySquares(Black, sq(7, 7), sq(7, 5))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
	// onto own piece
	err = g.ApplySquares(Black, sq(8, 8), sq(7, 7))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
	if got := BoardToPiyo(g.Board()); got != before {
		t.Fatalf("board changed after rejected move")
	}
	if g.Turn() != Black {
		t.Fatalf("turn flipped after rejected move")
	}
}

func TestGame_RejectsInvalidPlayerAndSquares(t *testing.T) {
	g := NewGameHirate()
	if err := g.ApplyMove(Player(3), 0, 1); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("err = %v", err)
	}
	if err := g.ApplySquares(Black, sq(0, 7), sq(7, 6)); !errors.Is(err, ErrOffBoard) {
		t.Fatalf("err = %v", err)
	}
}

func TestGame_CaptureGoesToPool(t *testing.T) {
	g := NewGame()
	b := g.Board()
	from, _ := sq(2, 8).Position()
	to, _ := sq(2, 3).Position()
	b.SetCell(from, &Cell{Kind: Rook, Owner: Black})
	b.SetCell(to, &Cell{Kind: Dragon, Owner: White})

	if err := g.ApplyMove(Black, from, to); err != nil {
		t.Fatal(err)
	}
	mv := g.Moves()[0]
	if !mv.Capture || mv.Captured != Dragon {
		t.Fatalf("move = %+v", mv)
	}
	if pool := g.Board().Pool(Black); len(pool) != 1 || pool[0] != Dragon {
		t.Fatalf("pool = %v", pool)
	}
}

func TestGame_Undo(t *testing.T) {
	g := NewGameHirate()
	start := BoardToPiyo(g.Board())

	if g.Undo() {
		t.Fatalf("undo on fresh game")
	}
	if err := g.ApplySquares(Black, sq(7, 7), sq(7, 6)); err != nil {
		t.Fatal(err)
	}
	if !g.Undo() {
		t.Fatalf("undo failed")
	}
	if BoardToPiyo(g.Board()) != start || g.Turn() != Black || len(g.Moves()) != 0 {
		t.Fatalf("undo did not restore the start position")
	}
}

func TestGame_SnapshotRestore(t *testing.T) {
	g := NewGameHirate()
	ss := g.Snapshot()
	if err := g.ApplySquares(Black, sq(2, 7), sq(2, 6)); err != nil {
		t.Fatal(err)
	}
	g.Restore(ss)
	if g.Turn() != Black || len(g.Moves()) != 0 {
		t.Fatalf("restore failed")
	}
	if g.Undo() {
		t.Fatalf("history survived Restore")
	}
}

func TestGame_ClearAll(t *testing.T) {
	g := NewGameHirate()
	g.SetTurn(White)
	g.ClearAll()
	for i := 0; i < NumSquares; i++ {
		if g.Board().CellAt(Position(i)) != nil {
			t.Fatalf("cell %d not cleared", i)
		}
	}
	if g.Turn() != Black {
		t.Fatalf("turn not reset")
	}
}

func TestGame_SetupAndCellAt(t *testing.T) {
	g := NewGame()
	g.Setup(SetupHirate)
	p, _ := sq(5, 9).Position()
	if c := g.CellAt(p); c == nil || c.Kind != King || c.Owner != Black {
		t.Fatalf("59 = %+v", c)
	}
	if err := g.ApplySquares(Black, sq(7, 7), sq(7, 6)); err != nil {
		t.Fatal(err)
	}
}
