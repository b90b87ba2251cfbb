package race

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBody indicates a body index outside the race.
	ErrInvalidBody = errors.New("race: invalid body index")

	// ErrNotRunning indicates a command that needs a running race.
	ErrNotRunning = errors.New("race: race is not running")
)

// CommandError wraps a rejected command with the body it targeted.
type CommandError struct {
	Command string
	Body    int
	Wrapped error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s body %d: %v", e.Command, e.Body, e.Wrapped)
}

func (e *CommandError) Unwrap() error {
	return e.Wrapped
}
