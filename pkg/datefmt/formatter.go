package datefmt

import (
	"time"
)

// Formatter is a compiled template. It is immutable once built and safe for
// concurrent use. Formatters are obtained from an Engine so they share its
// clock, render location and zone name.
type Formatter struct {
	template string
	segments []Segment
	engine   *Engine
}

// Template returns the template text the formatter was compiled from.
func (f *Formatter) Template() string { return f.template }

// Segments returns a copy of the compiled segment list.
func (f *Formatter) Segments() []Segment {
	return append([]Segment(nil), f.segments...)
}

// Placeholders lists the placeholder names referenced by the template in
// order of appearance, including repeats.
func (f *Formatter) Placeholders() []string {
	var out []string
	for _, seg := range f.segments {
		if seg.IsPlaceholder() {
			out = append(out, seg.Value)
		}
	}
	return out
}

// Plan describes the substitution plan on one line, for diagnostics.
func (f *Formatter) Plan() string { return describePlan(f.segments) }

// Format renders the template for instant. An empty instant means the
// engine clock's current time; otherwise instant is interpreted with
// ParseInstant and a parse failure is returned as *ParseError.
func (f *Formatter) Format(instant string) (string, error) {
	t, err := f.engine.instant(instant)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t), nil
}

// FormatTime renders the template for t in t's own location.
func (f *Formatter) FormatTime(t time.Time) string {
	out, _ := f.render(t)
	return out
}

// render substitutes the resolved values of t into the segments and returns
// the text along with the values used.
func (f *Formatter) render(t time.Time) (string, Values) {
	values := f.engine.resolve(t)
	return renderSegments(f.segments, values), values
}
