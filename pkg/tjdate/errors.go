package tjdate

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates the configuration is invalid or fails validation.
var ErrInvalidConfig = errors.New("tjdate: invalid config")

// InvalidConfigError represents a validation or parse failure for tjdate config.
type InvalidConfigError struct {
	Path string
	Msg  string
}

func (e *InvalidConfigError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "invalid tjdate config"
	} else {
		msg = "invalid tjdate config: " + msg
	}
	if e.Path != "" {
		return fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	return msg
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// NewInvalidConfigError creates an InvalidConfigError with a human message.
func NewInvalidConfigError(path, msg string) error {
	return &InvalidConfigError{Path: path, Msg: msg}
}

// IsInvalidConfig reports whether err is (or wraps) an invalid-config condition.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
