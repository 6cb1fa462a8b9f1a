package domain

// Player identifies a side. Black (先手) moves toward row 0, White (後手) toward row 8.
type Player uint8

const (
	Black Player = 0
	White Player = 1

	numPlayers = 2
)

func (pl Player) Valid() bool { return pl < numPlayers }

func (pl Player) Opponent() Player {
	if pl == Black {
		return White
	}
	return Black
}

// rowSign scales the row component of every direction offset.
// Tables are written from Black's point of view, so White mirrors them.
func (pl Player) rowSign() int {
	if pl == White {
		return -1
	}
	return 1
}

func (pl Player) String() string {
	switch pl {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse  // promoted bishop
	Dragon // promoted rook

	numPieceKinds
)

var pieceNames = [numPieceKinds]string{
	Pawn:      "pawn",
	Lance:     "lance",
	Knight:    "knight",
	Silver:    "silver",
	Gold:      "gold",
	Bishop:    "bishop",
	Rook:      "rook",
	King:      "king",
	ProPawn:   "+pawn",
	ProLance:  "+lance",
	ProKnight: "+knight",
	ProSilver: "+silver",
	Horse:     "horse",
	Dragon:    "dragon",
}

// AllPieceKinds lists every variant in declaration order.
func AllPieceKinds() []PieceKind {
	out := make([]PieceKind, 0, numPieceKinds)
	for k := PieceKind(0); k < numPieceKinds; k++ {
		out = append(out, k)
	}
	return out
}

func (k PieceKind) Valid() bool { return k < numPieceKinds }

func (k PieceKind) IsPromoted() bool { return k >= ProPawn && k < numPieceKinds }

// Unpromoted returns the base kind of a promoted piece, or k itself.
func (k PieceKind) Unpromoted() PieceKind {
	switch k {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	}
	return k
}

func (k PieceKind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return pieceNames[k]
}

// offset is a (row, col) step seen from Black. Negative rows are forward.
type offset struct {
	dr, dc int
}

// ray returns the 8 steps from an origin along one direction, nearest first.
func ray(dr, dc int) []offset {
	out := make([]offset, 0, BoardSize-1)
	for n := 1; n < BoardSize; n++ {
		out = append(out, offset{dr * n, dc * n})
	}
	return out
}

func join(parts ...[]offset) []offset {
	var out []offset
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	pawnOffsets   = []offset{{-1, 0}}
	lanceOffsets  = ray(-1, 0)
	knightOffsets = []offset{{-2, -1}, {-2, 1}}
	silverOffsets = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1}}
	goldOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	bishopOffsets = join(ray(-1, -1), ray(1, 1), ray(-1, 1), ray(1, -1))
	rookOffsets   = join(ray(-1, 0), ray(1, 0), ray(0, -1), ray(0, 1))
	horseOffsets  = join(bishopOffsets, []offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}})
	dragonOffsets = join(rookOffsets, []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}})
)

// shapeFunc decides legality from the deltas alone. dr is already multiplied
// by the mover's row sign, so "forward" is always dr < 0.
type shapeFunc func(dr, dc int) bool

type movement struct {
	offsets []offset
	shape   shapeFunc // nil: membership in offsets
}

var movements = [numPieceKinds]movement{
	Pawn:      {offsets: pawnOffsets},
	Lance:     {offsets: lanceOffsets, shape: lanceShape},
	Knight:    {offsets: knightOffsets},
	Silver:    {offsets: silverOffsets},
	Gold:      {offsets: goldOffsets},
	Bishop:    {offsets: bishopOffsets, shape: diagonalShape},
	Rook:      {offsets: rookOffsets, shape: orthogonalShape},
	King:      {offsets: kingOffsets, shape: kingShape},
	ProPawn:   {offsets: goldOffsets},
	ProLance:  {offsets: goldOffsets},
	ProKnight: {offsets: goldOffsets},
	ProSilver: {offsets: goldOffsets},
	Horse:     {offsets: horseOffsets, shape: func(dr, dc int) bool { return diagonalShape(dr, dc) || kingShape(dr, dc) }},
	Dragon:    {offsets: dragonOffsets, shape: func(dr, dc int) bool { return orthogonalShape(dr, dc) || kingShape(dr, dc) }},
}

func lanceShape(dr, dc int) bool      { return dc == 0 && dr < 0 }
func diagonalShape(dr, dc int) bool   { return abs(dr) == abs(dc) }
func orthogonalShape(dr, dc int) bool { return dr == 0 || dc == 0 }
func kingShape(dr, dc int) bool       { return max(abs(dr), abs(dc)) == 1 }

// IsMovable reports whether a piece of kind k owned by pl may go from -> to,
// ignoring every other piece on the board.
func (k PieceKind) IsMovable(pl Player, from, to Position) bool {
	if from == to || !k.Valid() || !pl.Valid() {
		return false
	}
	m := movements[k]
	if m.shape == nil {
		for _, p := range k.MovableCells(pl, from) {
			if p == to {
				return true
			}
		}
		return false
	}
	fr, fc := from.RowCol()
	tr, tc := to.RowCol()
	return m.shape((tr-fr)*pl.rowSign(), tc-fc)
}

// MovableCells translates every offset of k's table from the origin and keeps
// the ones that stay on the board. Order follows the table; duplicates are kept.
func (k PieceKind) MovableCells(pl Player, from Position) []Position {
	if !k.Valid() || !pl.Valid() {
		return nil
	}
	sign := pl.rowSign()
	offs := movements[k].offsets
	out := make([]Position, 0, len(offs))
	for _, o := range offs {
		if p, ok := from.Add(o.dr*sign, o.dc); ok {
			out = append(out, p)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
