package cli

import (
	"strings"

	"tsumeshogi-solver/internal/domain"
)

var kindLetters = [...]byte{
	domain.Pawn: 'P', domain.Lance: 'L', domain.Knight: 'N', domain.Silver: 'S',
	domain.Gold: 'G', domain.Bishop: 'B', domain.Rook: 'R', domain.King: 'K',
	domain.ProPawn: 'p', domain.ProLance: 'l', domain.ProKnight: 'n', domain.ProSilver: 's',
	domain.Horse: 'h', domain.Dragon: 'd',
}

// RenderBoard renders b in a fixed-width grid, files 9..1 by ranks 1..9.
// The square mark, if non-nil, is drawn in brackets.
func RenderBoard(b *domain.Board, mark *domain.Square) string {
	var sb strings.Builder
	sb.WriteString("    9  8  7  6  5  4  3  2  1\n")
	sb.WriteString("  +---------------------------+\n")

	for r := 1; r <= 9; r++ {
		sb.WriteString(" ")
		sb.WriteByte(byte('0' + r))
		sb.WriteString("|")
		for f := 9; f >= 1; f-- {
			sq := domain.Square{File: f, Rank: r}
			p, _ := sq.Position()
			sb.WriteString(cell(b.CellAt(p), mark != nil && *mark == sq))
		}
		sb.WriteString("|\n")
	}

	sb.WriteString("  +---------------------------+")
	return sb.String()
}

// cell returns a 3-column cell: ▲ for Black, ▽ for White, then the kind
// letter. Promoted kinds use lowercase letters (h, d for horse, dragon).
func cell(c *domain.Cell, marked bool) string {
	if c == nil {
		if marked {
			return "[.]"
		}
		return " . "
	}

	tri := "▲"
	if c.Owner == domain.White {
		tri = "▽"
	}
	s := tri + string(kindLetters[c.Kind])

	if marked {
		return "[" + s + "]"
	}
	return " " + s
}

func renderPool(pool []domain.PieceKind) string {
	if len(pool) == 0 {
		return "-"
	}
	letters := make([]string, len(pool))
	for i, k := range pool {
		letters[i] = string(kindLetters[k])
	}
	return strings.Join(letters, " ")
}
