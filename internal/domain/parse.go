package domain

import (
	"fmt"
	"regexp"
)

var reNumeric = regexp.MustCompile(`^\d{3,5}$`)

// NumericMove is a move typed as digits:
//   - "7776"  => move from 77 to 76
//   - "77761" => same, with the promote flag
//   - "076"   => drop to 76 (0 + file + rank)
type NumericMove struct {
	Drop    bool
	From    Square // zero for drops
	To      Square
	Promote bool
}

func ParseNumeric(s string) (NumericMove, error) {
	if !reNumeric.MatchString(s) {
		return NumericMove{}, fmt.Errorf("numeric input must be 3..5 digits: %q", s)
	}
	d := func(i int) int { return int(s[i] - '0') }

	switch len(s) {
	case 3:
		if s[0] != '0' {
			return NumericMove{}, fmt.Errorf("3-digit input must start with 0 for drop: %q", s)
		}
		to := Square{File: d(1), Rank: d(2)}
		if !to.Valid() {
			return NumericMove{}, fmt.Errorf("%w: %q", ErrOffBoard, s)
		}
		return NumericMove{Drop: true, To: to}, nil

	case 4, 5:
		from := Square{File: d(0), Rank: d(1)}
		to := Square{File: d(2), Rank: d(3)}
		if !from.Valid() || !to.Valid() {
			return NumericMove{}, fmt.Errorf("%w: %q", ErrOffBoard, s)
		}
		mv := NumericMove{From: from, To: to}
		if len(s) == 5 {
			switch s[4] {
			case '1':
				mv.Promote = true
			case '0':
			default:
				return NumericMove{}, fmt.Errorf("5th digit must be 0 or 1: %q", s)
			}
		}
		return mv, nil
	}
	return NumericMove{}, fmt.Errorf("unexpected length: %q", s)
}

// Apply plays a numeric move for the side to move. Drops and promotion are
// reported as ErrUnsupportedMove.
func (mv NumericMove) Apply(g *Game) error {
	if mv.Drop {
		return fmt.Errorf("%w: drop to %v", ErrUnsupportedMove, mv.To)
	}
	if mv.Promote {
		return fmt.Errorf("%w: promotion %v -> %v", ErrUnsupportedMove, mv.From, mv.To)
	}
	return g.ApplySquares(g.Turn(), mv.From, mv.To)
}
