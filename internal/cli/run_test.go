package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tsumeshogi-solver/internal/domain"
	"tsumeshogi-solver/internal/kif"
)

func TestRun_NumericMoves(t *testing.T) {
	var out bytes.Buffer
	if err := Run([]string{"-moves", "7776,3334"}, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"moves: 2", "turn: black", "status: ok", "[▽P]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestRun_IllegalMoveIsReported(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"-moves", "7775"}, &out, io.Discard)
	if !errors.Is(err, domain.ErrIllegalMove) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out.String(), "status: stopped") {
		t.Fatalf("report:\n%s", out.String())
	}
}

func TestRun_DropIsUnsupported(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"-moves", "055"}, &out, io.Discard)
	if !errors.Is(err, domain.ErrUnsupportedMove) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out.String(), "status: unsupported") {
		t.Fatalf("report:\n%s", out.String())
	}
}

func TestRun_RecordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.kif")
	second := filepath.Join(dir, "second.kif")

	if err := Run([]string{"-moves", "7776,3334,8822", "-out", first, "-sjis"}, io.Discard, io.Discard); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := Run([]string{"-moves", "3122", "-out", second, first}, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "moves: 4") {
		t.Fatalf("report:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "white pool: B") {
		t.Fatalf("report:\n%s", out.String())
	}

	rec, err := kif.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Moves) != 4 || !rec.Moves[3].Same {
		t.Fatalf("moves = %+v", rec.Moves)
	}
	raw, _ := os.ReadFile(second)
	if !strings.Contains(string(raw), "同　銀(31)") {
		t.Fatalf("second record is not UTF-8 or lacks 同:\n%s", raw)
	}
}

func TestRun_EmptyBoard(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"-empty", "-moves", "7776"}, &out, io.Discard)
	if !errors.Is(err, domain.ErrIllegalMove) {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_BadArgs(t *testing.T) {
	if err := Run([]string{"a.kif", "b.kif"}, io.Discard, io.Discard); err == nil {
		t.Fatalf("expected error for two records")
	}
	if err := Run([]string{"-nope"}, io.Discard, io.Discard); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
	if err := Run([]string{filepath.Join(t.TempDir(), "missing.kif")}, io.Discard, io.Discard); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRenderBoard_Hirate(t *testing.T) {
	g := domain.NewGameHirate()
	got := RenderBoard(g.Board(), nil)
	lines := strings.Split(got, "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[2] != " 1| ▽L ▽N ▽S ▽G ▽K ▽G ▽S ▽N ▽L|" {
		t.Fatalf("rank 1 = %q", lines[2])
	}
	if lines[9] != " 8| .  ▲B .  .  .  .  .  ▲R . |" {
		t.Fatalf("rank 8 = %q", lines[9])
	}
}
