package domain

import "fmt"

// Cell is a piece standing on a square.
type Cell struct {
	Kind  PieceKind
	Owner Player
}

// Board holds the 81 squares and, per player, the pool of captured pieces
// available for reuse (持駒).
type Board struct {
	cells [NumSquares]*Cell
	pools [numPlayers][]PieceKind
}

func NewBoard() *Board {
	return &Board{}
}

// CellAt returns a copy of the cell at p, or nil if the square is empty.
func (b *Board) CellAt(p Position) *Cell {
	if int(p) >= NumSquares {
		return nil
	}
	c := b.cells[p]
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// SetCell places a copy of c at p. A nil c empties the square.
func (b *Board) SetCell(p Position, c *Cell) {
	if int(p) >= NumSquares {
		return
	}
	if c == nil {
		b.cells[p] = nil
		return
	}
	cp := *c
	b.cells[p] = &cp
}

// Pool returns a copy of pl's usable pieces in capture order.
func (b *Board) Pool(pl Player) []PieceKind {
	if !pl.Valid() {
		return nil
	}
	out := make([]PieceKind, len(b.pools[pl]))
	copy(out, b.pools[pl])
	return out
}

func (b *Board) AddToPool(pl Player, k PieceKind) {
	if !pl.Valid() || !k.Valid() {
		return
	}
	b.pools[pl] = append(b.pools[pl], k)
}

// IsMovable reports whether pl may move the piece at from to to: pl owns the
// piece, to is empty or held by the opponent, and the piece's shape allows it.
// Pieces standing between from and to are not considered.
func (b *Board) IsMovable(pl Player, from, to Position) bool {
	if int(from) >= NumSquares || int(to) >= NumSquares {
		return false
	}
	src := b.cells[from]
	if src == nil || src.Owner != pl {
		return false
	}
	if dst := b.cells[to]; dst != nil && dst.Owner == pl {
		return false
	}
	return src.Kind.IsMovable(pl, from, to)
}

// DoMove moves the piece at from to to. A piece standing on to is taken into
// pl's pool with its owner dropped. The caller must have checked IsMovable;
// calling it on an illegal move panics before anything is changed.
func (b *Board) DoMove(pl Player, from, to Position) (captured PieceKind, ok bool) {
	if !b.IsMovable(pl, from, to) {
		panic(fmt.Sprintf("domain: DoMove(%s, %s, %s) on an illegal move", pl, from, to))
	}
	src, dst := b.cells[from], b.cells[to]
	b.cells[from] = nil
	if dst != nil {
		b.pools[pl] = append(b.pools[pl], dst.Kind)
		captured, ok = dst.Kind, true
	}
	b.cells[to] = src
	return captured, ok
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for i, c := range b.cells {
		if c != nil {
			cp := *c
			nb.cells[i] = &cp
		}
	}
	for pl := range b.pools {
		nb.pools[pl] = append([]PieceKind(nil), b.pools[pl]...)
	}
	return nb
}

func (b *Board) Clear() {
	*b = Board{}
}
