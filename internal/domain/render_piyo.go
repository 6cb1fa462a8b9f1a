package domain

import "strings"

// Board diagram in the KIF / piyo shogi layout (files 9..1, ranks 一..九).

// PyoNames holds the one-glyph name of each kind used in board diagrams.
var PyoNames = [numPieceKinds]string{
	Pawn: "歩", Lance: "香", Knight: "桂", Silver: "銀", Gold: "金",
	Bishop: "角", Rook: "飛", King: "玉",
	ProPawn: "と", ProLance: "杏", ProKnight: "圭", ProSilver: "全",
	Horse: "馬", Dragon: "竜",
}

var RankKanji = [10]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

const (
	piyoFileHeader = "  ９ ８ ７ ６ ５ ４ ３ ２ １"
	piyoFrame      = "+---------------------------+"
)

func BoardToPiyo(b *Board) string {
	lines := make([]string, 0, 12)
	lines = append(lines, piyoFileHeader)
	lines = append(lines, piyoFrame)
	for r := 1; r <= 9; r++ {
		var row strings.Builder
		for f := 9; f >= 1; f-- {
			p, _ := Square{File: f, Rank: r}.Position()
			c := b.CellAt(p)
			if c == nil {
				row.WriteString(" ・")
				continue
			}
			if c.Owner == White {
				row.WriteString("v")
			} else {
				row.WriteString(" ")
			}
			row.WriteString(PyoNames[c.Kind])
		}
		lines = append(lines, "|"+row.String()+"|"+RankKanji[r])
	}
	lines = append(lines, piyoFrame)
	return strings.Join(lines, "\n")
}

// PyoKind resolves a diagram glyph. 龍 and 王 are accepted as aliases.
func PyoKind(glyph string) (PieceKind, bool) {
	switch glyph {
	case "龍":
		return Dragon, true
	case "王":
		return King, true
	}
	for k, name := range PyoNames {
		if name == glyph {
			return PieceKind(k), true
		}
	}
	return 0, false
}
