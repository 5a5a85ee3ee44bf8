package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlrickert/tjdate/pkg/datefmt"
)

// ErrUsage is returned after the usage text has been printed for a bad
// invocation.
var ErrUsage = errors.New("usage")

func renderUserError(err error, deps *Deps) string {
	if err == nil {
		return ""
	}

	var parseErr *datefmt.ParseError
	if errors.As(err, &parseErr) {
		if isDebugLogLevel(deps) && parseErr.Err != nil {
			return fmt.Sprintf("cannot read date %q: %v", parseErr.Input, parseErr.Err)
		}
		return fmt.Sprintf("cannot read date %q", parseErr.Input)
	}

	var placeholderErr *datefmt.UnrecognizedPlaceholderError
	if errors.As(err, &placeholderErr) {
		return fmt.Sprintf("unknown variable ${%s} (available: %s; write \\${ for a literal ${)",
			placeholderErr.Name, strings.Join(datefmt.AvailablePlaceholders, ", "))
	}

	return err.Error()
}

func isDebugLogLevel(deps *Deps) bool {
	if deps == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(deps.LogLevel), "debug")
}
