package datefmt

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrParse indicates an instant string could not be interpreted as a date.
	ErrParse = errors.New("datefmt: unable to parse instant")

	// ErrUnrecognizedPlaceholder indicates a template token outside the
	// placeholder vocabulary under PolicyStrict.
	ErrUnrecognizedPlaceholder = errors.New("datefmt: unrecognized placeholder")
)

// ParseError carries the instant string that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to parse instant %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("unable to parse instant %q", e.Input)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrParse
}

// NewParseError constructs a typed ParseError.
func NewParseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}

// IsParseError reports whether err is (or wraps) a parse failure.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// UnrecognizedPlaceholderError names the unknown token and the template it
// was found in.
type UnrecognizedPlaceholderError struct {
	Name     string
	Template string
}

func (e *UnrecognizedPlaceholderError) Error() string {
	return fmt.Sprintf("unrecognized placeholder %q in template %q", e.Name, e.Template)
}

func (e *UnrecognizedPlaceholderError) Is(target error) bool {
	return target == ErrUnrecognizedPlaceholder
}

func (e *UnrecognizedPlaceholderError) Unwrap() error { return ErrUnrecognizedPlaceholder }

// NewUnrecognizedPlaceholderError constructs a typed UnrecognizedPlaceholderError.
func NewUnrecognizedPlaceholderError(name, template string) error {
	return &UnrecognizedPlaceholderError{Name: name, Template: template}
}

// IsUnrecognizedPlaceholder reports whether err is (or wraps) an
// unrecognized-placeholder condition.
func IsUnrecognizedPlaceholder(err error) bool {
	return errors.Is(err, ErrUnrecognizedPlaceholder)
}
