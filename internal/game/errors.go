package game

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedGameType = errors.New("unsupported game type")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrIllegalMove         = errors.New("illegal move")
	ErrGameOver            = errors.New("game is over")
	ErrWrongMoveKind       = errors.New("move kind not valid for this game")
)

// IllegalMoveError carries the rule that rejected a move.
type IllegalMoveError struct {
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

func illegal(format string, args ...any) error {
	return &IllegalMoveError{Reason: fmt.Sprintf(format, args...)}
}
