package domain

import (
	"errors"
	"testing"
)

func TestParseNumeric_Move4(t *testing.T) {
	mv, err := ParseNumeric("7776")
	if err != nil {
		t.Fatal(err)
	}
	if mv.Drop || mv.From != sq(7, 7) || mv.To != sq(7, 6) || mv.Promote {
		t.Fatalf("unexpected: %+v", mv)
	}
}

func TestParseNumeric_Move5Promote(t *testing.T) {
	mv, err := ParseNumeric("77761")
	if err != nil {
		t.Fatal(err)
	}
	if mv.Drop || !mv.Promote {
		t.Fatalf("unexpected: %+v", mv)
	}
}

func TestParseNumeric_Drop(t *testing.T) {
	mv, err := ParseNumeric("076")
	if err != nil {
		t.Fatal(err)
	}
	if !mv.Drop || mv.To != sq(7, 6) || mv.Promote {
		t.Fatalf("unexpected: %+v", mv)
	}
}

func TestParseNumeric_Errors(t *testing.T) {
	for _, in := range []string{"", "77", "776", "0706", "7776x", "77762", "123456"} {
		if _, err := ParseNumeric(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
	if _, err := ParseNumeric("7706"); !errors.Is(err, ErrOffBoard) {
		t.Fatalf("rank 0: err = %v", err)
	}
}

func TestNumericMove_Apply(t *testing.T) {
	g := NewGameHirate()
	mv, _ := ParseNumeric("7776")
	if err := mv.Apply(g); err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"055", "33341"} {
		mv, _ := ParseNumeric(in)
		if err := mv.Apply(g); !errors.Is(err, ErrUnsupportedMove) {
			t.Fatalf("%q: err = %v", in, err)
		}
	}
	if len(g.Moves()) != 1 {
		t.Fatalf("moves = %d", len(g.Moves()))
	}
}
