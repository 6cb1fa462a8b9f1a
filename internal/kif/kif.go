package kif

import (
	"fmt"

	"tsumeshogi-solver/internal/domain"
)

var totalCounts = map[domain.PieceKind]int{
	domain.Rook: 2, domain.Bishop: 2, domain.Gold: 4, domain.Silver: 4,
	domain.Knight: 4, domain.Lance: 4, domain.Pawn: 18, domain.King: 2,
}

// handOrder is the order pieces are listed in a hand line.
var handOrder = []domain.PieceKind{
	domain.Rook, domain.Bishop, domain.Gold, domain.Silver, domain.Knight, domain.Lance, domain.Pawn,
	domain.Dragon, domain.Horse, domain.ProSilver, domain.ProKnight, domain.ProLance, domain.ProPawn,
}

// ComputeGoteRemaining returns every piece that is neither on the board nor in
// Black's hand, which is what White holds in a tsumeshogi problem.
func ComputeGoteRemaining(b *domain.Board) map[domain.PieceKind]int {
	used := map[domain.PieceKind]int{}
	for i := 0; i < domain.NumSquares; i++ {
		if c := b.CellAt(domain.Position(i)); c != nil {
			used[c.Kind.Unpromoted()]++
		}
	}
	for _, k := range b.Pool(domain.Black) {
		used[k.Unpromoted()]++
	}

	rem := map[domain.PieceKind]int{}
	for kind, total := range totalCounts {
		if kind == domain.King {
			continue
		}
		if left := total - used[kind]; left > 0 {
			rem[kind] = left
		}
	}
	return rem
}

func PoolCounts(pool []domain.PieceKind) map[domain.PieceKind]int {
	out := map[domain.PieceKind]int{}
	for _, k := range pool {
		out[k]++
	}
	return out
}

func HandsDictToPiyo(d map[domain.PieceKind]int) string {
	out := ""
	for _, k := range handOrder {
		n := d[k]
		if n <= 0 {
			continue
		}
		out += moveNames[k] + InvCountKanji(n) + "　"
	}
	if out == "" {
		return "なし"
	}
	return out
}

func KifLineForMove(idx int, mv domain.Move, prevTo *domain.Square, sec int, totalSec int) (string, *domain.Square) {
	to := mv.To.Square()
	var dst string
	if prevTo != nil && *prevTo == to {
		dst = "同　"
	} else {
		dst = SqToKIF(to)
	}
	body := dst + moveNames[mv.Kind] + SqToParen(mv.From.Square())

	// spacing is normalised afterwards by FinalizeLineSpacing
	timePart := fmt.Sprintf("( 0:%02d/00:00:%02d)", sec, totalSec)
	line := fmt.Sprintf("%4d %s %s", idx, fmt.Sprintf("%-12s", body), timePart)
	return line, &to
}

type KIFOptions struct {
	HeaderComment string
	Handicap      string // 手合割
	TsumeHands    bool   // gote holds every piece not otherwise placed
	EndReason     string // appended as "まで%d手で<EndReason>"; empty omits the line
}

func DefaultKIFOptions() KIFOptions {
	return KIFOptions{
		HeaderComment: "# ---- tsumeshogi-solver ----",
		Handicap:      "平手",
		EndReason:     "中断",
	}
}

func TsumeKIFOptions() KIFOptions {
	return KIFOptions{
		HeaderComment: "# ---- tsumeshogi-solver ----",
		Handicap:      "詰将棋",
		TsumeHands:    true,
		EndReason:     "詰み",
	}
}

// GenerateKIF renders a game record starting at start.
func GenerateKIF(start domain.Snapshot, moves []domain.Move, opt KIFOptions) string {
	board := start.Board
	if board == nil {
		board = domain.NewBoard()
	}

	out := make([]string, 0, 64)
	out = append(out, opt.HeaderComment)
	out = append(out, "手合割："+opt.Handicap)
	out = append(out, "先手：先手")
	out = append(out, "後手：後手")

	goteHand := PoolCounts(board.Pool(domain.White))
	if opt.TsumeHands {
		goteHand = ComputeGoteRemaining(board)
	}
	out = append(out, "後手の持駒："+HandsDictToPiyo(goteHand))
	out = append(out, domain.BoardToPiyo(board))
	out = append(out, "先手の持駒："+HandsDictToPiyo(PoolCounts(board.Pool(domain.Black))))
	if start.Turn == domain.White {
		out = append(out, "後手番")
	}

	out = append(out, "終了日時："+NowYYYYMMDDHHMMSS())
	out = append(out, "手数----指手---------消費時間--")

	var prevTo *domain.Square
	totalSec := 0
	secPerMove := 1

	for i, mv := range moves {
		totalSec += secPerMove
		line, newPrev := KifLineForMove(i+1, mv, prevTo, secPerMove, totalSec)
		out = append(out, FinalizeLineSpacing(line))
		prevTo = newPrev
	}

	if len(moves) > 0 && opt.EndReason != "" {
		out = append(out, fmt.Sprintf("まで%d手で%s", len(moves), opt.EndReason))
	}

	return joinLines(out) + "\n"
}
