package domain

import "errors"

var (
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrOffBoard        = errors.New("square out of board")
	ErrUnsupportedMove = errors.New("unsupported move")
)
