package domain

import "sync"

// Move is one accepted board move.
type Move struct {
	Player   Player
	From     Position
	To       Position
	Kind     PieceKind
	Captured PieceKind
	Capture  bool
}

// Snapshot is a detached copy of the game state.
type Snapshot struct {
	Board *Board
	Turn  Player
	Moves []Move
}

// Game owns one Board and the turn marker. Methods on Game are safe for
// concurrent use and ApplyMove checks and mutates under one lock. The *Board
// returned by Board is not covered by that lock; use Setup and CellAt when
// the game is shared.
type Game struct {
	mu      sync.Mutex
	board   *Board
	turn    Player
	moves   []Move
	history []Snapshot
}

func NewGame() *Game {
	return &Game{
		board: NewBoard(),
		turn:  Black,
		moves: make([]Move, 0),
	}
}

// Board exposes the live board. Access through it is not synchronised, and
// mutating it bypasses turn handling and history.
func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Setup runs fn on the board under the game lock.
func (g *Game) Setup(fn func(b *Board)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.board)
}

// CellAt is Board().CellAt under the game lock.
func (g *Game) CellAt(p Position) *Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.CellAt(p)
}

func (g *Game) Turn() Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

func (g *Game) SetTurn(pl Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pl.Valid() {
		g.turn = pl
	}
}

func (g *Game) Moves() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Move, len(g.moves))
	copy(out, g.moves)
	return out
}

func (g *Game) IsMovable(pl Player, from, to Position) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.IsMovable(pl, from, to)
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	mv := make([]Move, len(g.moves))
	copy(mv, g.moves)
	return Snapshot{
		Board: g.board.Clone(),
		Turn:  g.turn,
		Moves: mv,
	}
}

// Restore replaces the state with ss. Undo history is dropped.
func (g *Game) Restore(ss Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.restoreLocked(ss)
	g.history = nil
}

func (g *Game) restoreLocked(ss Snapshot) {
	if ss.Board == nil {
		g.board = NewBoard()
	} else {
		g.board = ss.Board.Clone()
	}
	g.turn = ss.Turn
	g.moves = make([]Move, len(ss.Moves))
	copy(g.moves, ss.Moves)
}

// Undo reverts the last accepted move. It returns false when there is none.
func (g *Game) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.restoreLocked(last)
	return true
}

// ClearAll empties the board and pools, forgets moves and gives Black the turn.
func (g *Game) ClearAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.Clear()
	g.turn = Black
	g.moves = nil
	g.history = nil
}
