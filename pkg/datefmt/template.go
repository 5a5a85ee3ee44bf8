package datefmt

import (
	"fmt"
	"strings"
)

// segmentKind distinguishes literal text from placeholder references in a
// compiled template.
type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentPlaceholder
)

// Segment is one piece of a compiled template. Literal segments carry the
// text to copy; placeholder segments carry the vocabulary name to substitute.
type Segment struct {
	kind  segmentKind
	Value string
}

// IsPlaceholder reports whether the segment references a placeholder.
func (s Segment) IsPlaceholder() bool { return s.kind == segmentPlaceholder }

func (s Segment) String() string {
	if s.kind == segmentPlaceholder {
		return "var(" + s.Value + ")"
	}
	return fmt.Sprintf("lit(%q)", s.Value)
}

// Literal returns a literal segment. Exposed for building expected plans in
// tests and diagnostics.
func Literal(text string) Segment { return Segment{kind: segmentLiteral, Value: text} }

// Var returns a placeholder segment for name.
func Var(name string) Segment { return Segment{kind: segmentPlaceholder, Value: name} }

// Compile scans tmpl into segments without touching any cache. An empty
// tmpl yields no segments; engines substitute DefaultTemplate before
// compiling.
func Compile(tmpl string, policy PlaceholderPolicy) ([]Segment, error) {
	return compileTemplate(tmpl, policy)
}

// compileTemplate scans tmpl into segments. `${name}` tokens naming a
// vocabulary entry become placeholder segments; `\${` produces a literal
// `${`; an unterminated `${` is literal text. Unknown tokens are kept
// verbatim under PolicyPermissive and rejected under PolicyStrict.
func compileTemplate(tmpl string, policy PlaceholderPolicy) ([]Segment, error) {
	var (
		segments []Segment
		lit      strings.Builder
	)
	flush := func() {
		if lit.Len() == 0 {
			return
		}
		segments = append(segments, Literal(lit.String()))
		lit.Reset()
	}

	i := 0
	for i < len(tmpl) {
		switch {
		case strings.HasPrefix(tmpl[i:], `\${`):
			lit.WriteString("${")
			i += 3
		case strings.HasPrefix(tmpl[i:], "${"):
			end := strings.IndexByte(tmpl[i+2:], '}')
			if end < 0 {
				lit.WriteString(tmpl[i:])
				i = len(tmpl)
				continue
			}
			token := tmpl[i+2 : i+2+end]
			raw := tmpl[i : i+3+end]
			i += 3 + end

			name := strings.TrimSpace(token)
			if IsPlaceholder(name) {
				flush()
				segments = append(segments, Var(name))
				continue
			}
			if policy == PolicyStrict {
				return nil, NewUnrecognizedPlaceholderError(name, tmpl)
			}
			lit.WriteString(raw)
		default:
			lit.WriteByte(tmpl[i])
			i++
		}
	}
	flush()
	return segments, nil
}

// renderSegments walks segments and substitutes resolved values.
func renderSegments(segments []Segment, values Values) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.kind == segmentPlaceholder {
			b.WriteString(values[seg.Value])
			continue
		}
		b.WriteString(seg.Value)
	}
	return b.String()
}

// describePlan renders segments as a single line for debug output.
func describePlan(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.String())
	}
	return strings.Join(parts, " + ")
}
