package models

import (
	"errors"
	"fmt"
)

// GameStateError marks an operation that is illegal in the match's current
// state. It is recoverable and its message is shown to the user verbatim.
type GameStateError struct {
	Reason string
}

func (e *GameStateError) Error() string {
	return e.Reason
}

func gameStateErrorf(format string, args ...any) error {
	return &GameStateError{Reason: fmt.Sprintf(format, args...)}
}

// IsGameStateError reports whether err is a draft legality rejection.
func IsGameStateError(err error) bool {
	var gse *GameStateError
	return errors.As(err, &gse)
}

// ErrIntegrity wraps conditions that should be impossible with correct
// callers, such as accepting an offer that belongs to another match. These
// are programming defects and must fail loudly rather than be retried or
// shown as user errors.
var ErrIntegrity = errors.New("integrity violation")
