package gridsearch

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBoard   = errors.New("malformed board")
	ErrNoPath           = errors.New("no path found")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// MalformedBoardError describes why a board could not be turned into a Grid.
type MalformedBoardError struct {
	Path   string // file name, empty when parsed from a reader
	Line   int    // 1-based line number, 0 when not tied to a line
	Reason string
	Err    error // underlying I/O error, if any
}

func (e *MalformedBoardError) Error() string {
	msg := ErrMalformedBoard.Error()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedBoardError) Unwrap() error { return e.Err }

// Is makes every MalformedBoardError match ErrMalformedBoard.
func (e *MalformedBoardError) Is(target error) bool {
	return target == ErrMalformedBoard
}
