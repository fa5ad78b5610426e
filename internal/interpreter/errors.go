package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCommand = errors.New("empty command")
	ErrInvalidTrack = errors.New("invalid track")

	errNoTrack = errors.New("context has no track")
)

// ParseError reports the input line a command could not be read from.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
