package domain

import "testing"

func TestPosition_RowColRoundTrip(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p, ok := FromRowCol(r, c)
			if !ok {
				t.Fatalf("FromRowCol(%d,%d) rejected", r, c)
			}
			if gr, gc := p.RowCol(); gr != r || gc != c {
				t.Fatalf("round trip (%d,%d) -> %d -> (%d,%d)", r, c, p, gr, gc)
			}
		}
	}
}

func TestPosition_FromRowColOffBoard(t *testing.T) {
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {9, 9}, {-1, -1}} {
		if _, ok := FromRowCol(rc[0], rc[1]); ok {
			t.Fatalf("FromRowCol(%d,%d) accepted", rc[0], rc[1])
		}
	}
}

func TestPosition_Add(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		p := NewPosition(i)
		for dr := -9; dr <= 9; dr++ {
			for dc := -9; dc <= 9; dc++ {
				q, ok := p.Add(dr, dc)
				r, c := p.Row()+dr, p.Col()+dc
				in := r >= 0 && r < 9 && c >= 0 && c < 9
				if ok != in {
					t.Fatalf("%v.Add(%d,%d) ok=%v want %v", p, dr, dc, ok, in)
				}
				if ok && (q.Row() != r || q.Col() != c) {
					t.Fatalf("%v.Add(%d,%d) = %v, want r%dc%d", p, dr, dc, q, r, c)
				}
			}
		}
	}
}

func TestNewPosition_PanicsOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, NumSquares, 200} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewPosition(%d) did not panic", idx)
				}
			}()
			NewPosition(idx)
		}()
	}
}

func TestSquare_PositionMapping(t *testing.T) {
	// ９一 is the top-left corner of the diagram, １九 the bottom-right.
	p, ok := Square{File: 9, Rank: 1}.Position()
	if !ok || p.Index() != 0 {
		t.Fatalf("91 -> %v ok=%v", p, ok)
	}
	p, ok = Square{File: 1, Rank: 9}.Position()
	if !ok || p.Index() != NumSquares-1 {
		t.Fatalf("19 -> %v ok=%v", p, ok)
	}
	for i := 0; i < NumSquares; i++ {
		p := NewPosition(i)
		q, ok := p.Square().Position()
		if !ok || q != p {
			t.Fatalf("square round trip %v -> %v -> %v", p, p.Square(), q)
		}
	}
	if _, ok := (Square{File: 0, Rank: 5}).Position(); ok {
		t.Fatalf("file 0 accepted")
	}
}
