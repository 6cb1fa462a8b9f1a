package kif

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tsumeshogi-solver/internal/domain"
)

var fwDigits = [10]string{"０", "１", "２", "３", "４", "５", "６", "７", "８", "９"}

// moveNames are the piece names used in move lines and hands.
var moveNames = map[domain.PieceKind]string{
	domain.Pawn: "歩", domain.Lance: "香", domain.Knight: "桂", domain.Silver: "銀",
	domain.Gold: "金", domain.Bishop: "角", domain.Rook: "飛", domain.King: "玉",
	domain.ProPawn: "と", domain.ProLance: "成香", domain.ProKnight: "成桂", domain.ProSilver: "成銀",
	domain.Horse: "馬", domain.Dragon: "龍",
}

var NowFunc = func() string {
	return time.Now().Format("2006/01/02 15:04:05")
}

func NowYYYYMMDDHHMMSS() string {
	return NowFunc()
}

func SqToKIF(sq domain.Square) string {
	return fwDigits[sq.File] + domain.RankKanji[sq.Rank]
}

func SqToParen(sq domain.Square) string {
	return fmt.Sprintf("(%d%d)", sq.File, sq.Rank)
}

var reSpaceBeforeParen = regexp.MustCompile(`\s+\(`)
var reSpaceAfterLParen = regexp.MustCompile(`\(\s+`)

// FinalizeLineSpacing leaves one space between the move and its time, and
// none just inside the opening paren.
func FinalizeLineSpacing(line string) string {
	line = reSpaceBeforeParen.ReplaceAllString(line, " (")
	line = reSpaceAfterLParen.ReplaceAllString(line, "(")
	return line
}

var countKanji = []string{
	"", "", "二", "三", "四", "五", "六", "七", "八", "九",
	"十", "十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八",
}

// InvCountKanji renders a hand count; 1 is implicit.
func InvCountKanji(n int) string {
	if n >= 1 && n < len(countKanji) {
		return countKanji[n]
	}
	return fmt.Sprintf("%d", n)
}

// parseCountKanji is the inverse of InvCountKanji; "" means 1.
func parseCountKanji(s string) (int, bool) {
	if s == "" {
		return 1, true
	}
	for n := 2; n < len(countKanji); n++ {
		if countKanji[n] == s {
			return n, true
		}
	}
	return 0, false
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
