package kif

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tsumeshogi-solver/internal/domain"
)

// MoveLine is one parsed move of a KIF record.
type MoveLine struct {
	Number  int
	To      domain.Square
	Same    bool          // written as 同
	From    domain.Square // zero for drops
	Kind    domain.PieceKind
	Drop    bool
	Promote bool
}

type Record struct {
	Handicap string
	Start    domain.Snapshot
	Moves    []MoveLine
	End      string // terminal word such as 投了, if present
}

var (
	moveLineRe   = regexp.MustCompile(`^\s*(\d+)\s+(同\s*\S+|\S+)`)
	fromSquareRe = regexp.MustCompile(`\(([1-9])([1-9])\)$`)
)

var terminalWords = map[string]bool{
	"投了": true, "中断": true, "持将棋": true, "千日手": true, "詰み": true, "切れ負け": true,
	"反則勝ち": true, "反則負け": true, "入玉勝ち": true, "勝ち宣言": true, "不詰": true,
}

type pieceDef struct {
	name string
	kind domain.PieceKind
}

// Longer names first so 成銀 is not read as a promoting 銀.
var pieceDefs = []pieceDef{
	{"成銀", domain.ProSilver},
	{"成桂", domain.ProKnight},
	{"成香", domain.ProLance},
	{"全", domain.ProSilver},
	{"圭", domain.ProKnight},
	{"杏", domain.ProLance},
	{"と", domain.ProPawn},
	{"馬", domain.Horse},
	{"龍", domain.Dragon},
	{"竜", domain.Dragon},
	{"王", domain.King},
	{"玉", domain.King},
	{"飛", domain.Rook},
	{"角", domain.Bishop},
	{"金", domain.Gold},
	{"銀", domain.Silver},
	{"桂", domain.Knight},
	{"香", domain.Lance},
	{"歩", domain.Pawn},
}

// ParseRecord reads the start position and the move list of a KIF text.
// Without a board diagram the 手合割 must be 平手.
func ParseRecord(text string) (*Record, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	rec := &Record{}
	b := domain.NewBoard()
	turn := domain.Black
	hasDiagram := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "手合割："):
			rec.Handicap = strings.TrimSpace(strings.TrimPrefix(line, "手合割："))
		case strings.HasPrefix(line, "先手の持駒："):
			if err := parseHand(b, domain.Black, strings.TrimPrefix(line, "先手の持駒：")); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		case strings.HasPrefix(line, "後手の持駒："):
			if err := parseHand(b, domain.White, strings.TrimPrefix(line, "後手の持駒：")); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		case strings.HasPrefix(line, "後手番"):
			turn = domain.White
		case strings.HasPrefix(line, "+---") && !hasDiagram:
			if err := parseDiagram(b, lines[i+1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			hasDiagram = true
			i += 9
		}
	}

	if !hasDiagram {
		if rec.Handicap != "" && rec.Handicap != "平手" {
			return nil, fmt.Errorf("unsupported handicap without board diagram: %s", rec.Handicap)
		}
		black, white := b.Pool(domain.Black), b.Pool(domain.White)
		domain.SetupHirate(b)
		for _, k := range black {
			b.AddToPool(domain.Black, k)
		}
		for _, k := range white {
			b.AddToPool(domain.White, k)
		}
	}
	rec.Start = domain.Snapshot{Board: b, Turn: turn}

	moves, end, err := parseMoves(lines)
	if err != nil {
		return nil, err
	}
	rec.Moves = moves
	rec.End = end
	return rec, nil
}

func parseDiagram(b *domain.Board, rows []string) error {
	if len(rows) < 9 {
		return errors.New("board diagram is truncated")
	}
	for r := 1; r <= 9; r++ {
		line := rows[r-1]
		first := strings.Index(line, "|")
		last := strings.LastIndex(line, "|")
		if first < 0 || last <= first {
			return fmt.Errorf("rank %d: malformed diagram row %q", r, line)
		}
		cells := []rune(line[first+1 : last])
		if len(cells) != 18 {
			return fmt.Errorf("rank %d: want 9 cells, got %q", r, string(cells))
		}
		for i := 0; i < 9; i++ {
			marker, glyph := cells[2*i], string(cells[2*i+1])
			if glyph == "・" {
				continue
			}
			kind, ok := domain.PyoKind(glyph)
			if !ok {
				return fmt.Errorf("rank %d: unknown piece %q", r, glyph)
			}
			owner := domain.Black
			if marker == 'v' {
				owner = domain.White
			}
			p, _ := domain.Square{File: 9 - i, Rank: r}.Position()
			b.SetCell(p, &domain.Cell{Kind: kind, Owner: owner})
		}
	}
	return nil
}

// parseHand reads "飛　角二　歩十八　" style hand lines into pl's pool.
func parseHand(b *domain.Board, pl domain.Player, text string) error {
	text = strings.TrimSpace(strings.ReplaceAll(text, "　", " "))
	if text == "" || text == "なし" {
		return nil
	}
	for _, item := range strings.Fields(text) {
		def, ok := matchPiece(item)
		if !ok {
			return fmt.Errorf("unknown piece in hand: %q", item)
		}
		n, ok := parseCountKanji(strings.TrimPrefix(item, def.name))
		if !ok {
			return fmt.Errorf("bad count in hand: %q", item)
		}
		for j := 0; j < n; j++ {
			b.AddToPool(pl, def.kind)
		}
	}
	return nil
}

func matchPiece(s string) (pieceDef, bool) {
	for _, def := range pieceDefs {
		if strings.HasPrefix(s, def.name) {
			return def, true
		}
	}
	return pieceDef{}, false
}

func parseMoves(lines []string) ([]MoveLine, string, error) {
	var moves []MoveLine
	var prevTo *domain.Square
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "変化：") {
			// branches follow the main line
			break
		}
		m := moveLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		token := strings.Join(strings.Fields(m[2]), "")
		if terminalWords[token] {
			return moves, token, nil
		}
		mv, err := parseMoveToken(token, prevTo)
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", i+1, err)
		}
		mv.Number, _ = strconv.Atoi(m[1])
		if mv.Number != len(moves)+1 {
			return nil, "", fmt.Errorf("line %d: move number %d out of sequence, want %d", i+1, mv.Number, len(moves)+1)
		}
		moves = append(moves, mv)
		to := mv.To
		prevTo = &to
	}
	return moves, "", nil
}

func parseMoveToken(token string, prevTo *domain.Square) (MoveLine, error) {
	var mv MoveLine
	work := token

	if strings.HasPrefix(work, "同") {
		if prevTo == nil {
			return mv, errors.New("same-square move without previous destination")
		}
		mv.To, mv.Same = *prevTo, true
		work = strings.TrimLeft(strings.TrimPrefix(work, "同"), " 　")
	} else {
		runes := []rune(work)
		if len(runes) < 3 {
			return mv, fmt.Errorf("invalid move token: %s", token)
		}
		file, ok := parseFileRune(runes[0])
		if !ok {
			return mv, fmt.Errorf("invalid destination file in %s", token)
		}
		rank, ok := parseRankRune(runes[1])
		if !ok {
			return mv, fmt.Errorf("invalid destination rank in %s", token)
		}
		mv.To = domain.Square{File: file, Rank: rank}
		work = string(runes[2:])
	}

	if m := fromSquareRe.FindStringSubmatch(work); m != nil {
		mv.From = domain.Square{File: int(m[1][0] - '0'), Rank: int(m[2][0] - '0')}
		work = strings.TrimSuffix(work, m[0])
	}

	def, ok := matchPiece(work)
	if !ok {
		return mv, fmt.Errorf("unknown piece in %s", token)
	}
	mv.Kind = def.kind

	switch suffix := strings.TrimPrefix(work, def.name); suffix {
	case "":
	case "成":
		mv.Promote = true
	case "不成":
	case "打":
		mv.Drop = true
	default:
		return mv, fmt.Errorf("unexpected suffix %q in %s", suffix, token)
	}

	if mv.Drop {
		if mv.Kind.IsPromoted() {
			return mv, errors.New("cannot drop promoted piece")
		}
		return mv, nil
	}
	if !mv.From.Valid() {
		return mv, fmt.Errorf("missing source square in %s", token)
	}
	return mv, nil
}

func parseFileRune(r rune) (int, bool) {
	if r >= '1' && r <= '9' {
		return int(r - '0'), true
	}
	if r >= '１' && r <= '９' {
		return int(r-'１') + 1, true
	}
	return 0, false
}

func parseRankRune(r rune) (int, bool) {
	for n := 1; n <= 9; n++ {
		if domain.RankKanji[n] == string(r) {
			return n, true
		}
	}
	if r >= '1' && r <= '9' {
		return int(r - '0'), true
	}
	return 0, false
}

// Replay plays lines on g from its current position and returns how many
// moves were applied. It stops at the first move it cannot apply.
func Replay(g *domain.Game, lines []MoveLine) (int, error) {
	for i, mv := range lines {
		n := mv.Number
		if n == 0 {
			n = i + 1
		}
		if mv.Drop {
			return i, fmt.Errorf("move %d: %w: drop %s", n, domain.ErrUnsupportedMove, SqToKIF(mv.To))
		}
		if mv.Promote {
			return i, fmt.Errorf("move %d: %w: promotion to %s", n, domain.ErrUnsupportedMove, SqToKIF(mv.To))
		}
		from, ok := mv.From.Position()
		if !ok {
			return i, fmt.Errorf("move %d: %w: from=%v", n, domain.ErrOffBoard, mv.From)
		}
		if c := g.CellAt(from); c != nil && c.Kind != mv.Kind {
			return i, fmt.Errorf("move %d: %w: %s holds %v, record says %v",
				n, domain.ErrIllegalMove, SqToKIF(mv.From), c.Kind, mv.Kind)
		}
		if err := g.ApplySquares(g.Turn(), mv.From, mv.To); err != nil {
			return i, fmt.Errorf("move %d: %w", n, err)
		}
	}
	return len(lines), nil
}
