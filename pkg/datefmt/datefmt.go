// Package datefmt renders point-in-time values through `${name}` templates.
//
// A template such as "${yyyy}-${mm}-${dd}" is compiled once into a list of
// literal and placeholder segments and cached by its exact text. Rendering
// walks the segments and substitutes the values resolved for an instant.
// Instants are either "now" from an injectable Clock or strings interpreted
// by ParseInstant.
package datefmt

var defaultEngine = NewEngine()

// Default returns the process-wide engine used by the package-level helpers.
func Default() *Engine { return defaultEngine }

// GetDateFormatter compiles (or fetches) tmpl on the default engine.
func GetDateFormatter(tmpl string) (*Formatter, error) {
	return defaultEngine.GetDateFormatter(tmpl)
}

// GetTimestamp renders instant on the default engine. An empty instant means
// now; opts may be nil.
func GetTimestamp(instant string, opts *Options) (string, error) {
	return defaultEngine.GetTimestamp(instant, opts)
}
