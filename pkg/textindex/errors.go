package textindex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPattern is matched when the pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ArgumentError reports an argument of the wrong type.
type ArgumentError struct {
	Arg  string
	Want string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("'%s' must be %s", e.Arg, e.Want)
}

// Is makes errors.Is(err, ErrInvalidArgument) true for any ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// PatternError reports a pattern the regexp package refused to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidPattern) true for any PatternError.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

func invalidArgument(arg, want string) error {
	return &ArgumentError{Arg: arg, Want: want}
}
