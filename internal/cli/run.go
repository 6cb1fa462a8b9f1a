package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tsumeshogi-solver/internal/domain"
	"tsumeshogi-solver/internal/kif"
)

type options struct {
	empty bool
	moves string
	out   string
	sjis  bool
	tsume bool
	path  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("kifcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.empty, "empty", false, "start from an empty board instead of 平手 when no record is given")
	fs.StringVar(&o.moves, "moves", "", "comma-separated numeric moves to play after the record, e.g. 7776,3334")
	fs.StringVar(&o.out, "out", "", "write the resulting KIF record to this path")
	fs.BoolVar(&o.sjis, "sjis", false, "write the record as Shift_JIS")
	fs.BoolVar(&o.tsume, "tsume", false, "write the record with tsumeshogi hands")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: kifcheck [flags] [record.kif]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 1 {
		return o, fmt.Errorf("at most one record, got %d", fs.NArg())
	}
	o.path = fs.Arg(0)
	return o, nil
}

// Run replays a KIF record and/or numeric moves, prints the resulting
// position to stdout and optionally writes the record back out.
// A move that cannot be applied is reported and returned as the error.
func Run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	g := domain.NewGame()
	if !o.empty {
		g.Setup(domain.SetupHirate)
	}
	var record *kif.Record
	if o.path != "" {
		if record, err = kif.ReadFile(o.path); err != nil {
			return fmt.Errorf("read %s: %w", o.path, err)
		}
		g.Restore(record.Start)
	}
	start := g.Snapshot()

	playErr := play(g, record, o.moves)

	fmt.Fprintln(stdout, report(g, o.path, playErr))

	if o.out != "" {
		opt := kif.DefaultKIFOptions()
		if o.tsume {
			opt = kif.TsumeKIFOptions()
		}
		text := kif.GenerateKIF(start, g.Moves(), opt)
		if err := kif.WriteFile(o.out, text, o.sjis); err != nil {
			return fmt.Errorf("write %s: %w", o.out, err)
		}
	}
	return playErr
}

func play(g *domain.Game, record *kif.Record, moves string) error {
	if record != nil {
		if _, err := kif.Replay(g, record.Moves); err != nil {
			return err
		}
	}
	for _, s := range strings.Split(moves, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		mv, err := domain.ParseNumeric(s)
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		if err := mv.Apply(g); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

func report(g *domain.Game, path string, playErr error) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	title := "kifcheck"
	if path != "" {
		title += "  " + path
	}

	ss := g.Snapshot()
	moves := ss.Moves
	var mark *domain.Square
	if len(moves) > 0 {
		to := moves[len(moves)-1].To.Square()
		mark = &to
	}
	b := ss.Board

	status := "ok"
	if playErr != nil {
		status = "stopped: " + playErr.Error()
		if errors.Is(playErr, domain.ErrUnsupportedMove) {
			status = "unsupported: " + playErr.Error()
		}
	}

	lines := []string{
		fmt.Sprintf("moves: %d", len(moves)),
		fmt.Sprintf("turn: %s", ss.Turn),
		fmt.Sprintf("black pool: %s", renderPool(b.Pool(domain.Black))),
		fmt.Sprintf("white pool: %s", renderPool(b.Pool(domain.White))),
		"status: " + status,
	}

	return titleStyle.Render(title) + "\n" +
		boxStyle.Render(RenderBoard(b, mark)) + "\n" +
		strings.Join(lines, "\n")
}
