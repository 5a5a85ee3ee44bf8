package datefmt

import (
	"log/slog"
	"time"

	"github.com/jlrickert/tjdate/pkg/log"
)

// Options tune a single GetTimestamp call.
type Options struct {
	// Format is the template to render. Empty selects the engine default.
	Format string

	// Debug logs the substitution plan and resolved values at debug level.
	// It never changes the returned string.
	Debug bool
}

// Engine compiles, caches and invokes formatters. The zero value is not
// usable; construct with NewEngine.
type Engine struct {
	cache           *Cache
	clock           Clock
	location        *time.Location
	zoneName        string
	policy          PlaceholderPolicy
	defaultTemplate string
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used when no instant is given.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLocation sets the zone used for "now" and for instant strings without
// an explicit zone. Unless WithZoneName is also given, tzName renders the
// location's name.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc == nil {
			return
		}
		e.location = loc
		if e.zoneName == "" {
			e.zoneName = loc.String()
		}
	}
}

// WithZoneName fixes the value rendered for tzName.
func WithZoneName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.zoneName = name
		}
	}
}

// WithPolicy selects how unknown placeholders are handled.
func WithPolicy(p PlaceholderPolicy) Option {
	return func(e *Engine) {
		if p != "" {
			e.policy = p
		}
	}
}

// WithDefaultTemplate replaces DefaultTemplate for this engine.
func WithDefaultTemplate(tmpl string) Option {
	return func(e *Engine) {
		if tmpl != "" {
			e.defaultTemplate = tmpl
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(lg *slog.Logger) Option {
	return func(e *Engine) {
		if lg != nil {
			e.logger = lg
		}
	}
}

// NewEngine builds an engine with a fresh cache, the real clock, the local
// zone and the permissive placeholder policy unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:           RealClock{},
		location:        time.Local,
		policy:          PolicyPermissive,
		defaultTemplate: DefaultTemplate,
		logger:          log.NewNopLogger(),
		cache:           NewCache(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Cache exposes the engine cache for introspection.
func (e *Engine) Cache() *Cache { return e.cache }

// Policy returns the unknown-placeholder policy.
func (e *Engine) Policy() PlaceholderPolicy { return e.policy }

// DefaultTemplate returns the template used when callers pass none.
func (e *Engine) DefaultTemplate() string { return e.defaultTemplate }

// ZoneName returns the value rendered for tzName.
func (e *Engine) ZoneName() string {
	if e.zoneName != "" {
		return e.zoneName
	}
	return LocalZoneName()
}

// GetDateFormatter returns the compiled formatter for tmpl, compiling it on
// first use. An empty tmpl selects the default template.
func (e *Engine) GetDateFormatter(tmpl string) (*Formatter, error) {
	if tmpl == "" {
		tmpl = e.defaultTemplate
	}
	return e.cache.GetOrCompile(tmpl, e.compile)
}

// GetTimestamp renders instant (or now when empty) with the template from
// opts, which may be nil.
func (e *Engine) GetTimestamp(instant string, opts *Options) (string, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	f, err := e.GetDateFormatter(o.Format)
	if err != nil {
		return "", err
	}
	t, err := e.instant(instant)
	if err != nil {
		return "", err
	}

	out, values := f.render(t)
	if o.Debug {
		e.logger.Debug("timestamp rendered",
			"template", f.template,
			"plan", f.Plan(),
			"instant", instant,
			"values", map[string]string(values),
			"result", out,
		)
	}
	return out, nil
}

// FormatTime renders t with tmpl (default when empty).
func (e *Engine) FormatTime(t time.Time, tmpl string) (string, error) {
	f, err := e.GetDateFormatter(tmpl)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t), nil
}

// Now returns the engine clock's time in the engine location.
func (e *Engine) Now() time.Time {
	return e.clock.Now().In(e.location)
}

func (e *Engine) compile(tmpl string) (*Formatter, error) {
	segments, err := compileTemplate(tmpl, e.policy)
	if err != nil {
		e.logger.Debug("template rejected", "template", tmpl, "err", err)
		return nil, err
	}
	f := &Formatter{template: tmpl, segments: segments, engine: e}
	e.logger.Debug("template compiled", "template", tmpl, "plan", f.Plan())
	return f, nil
}

func (e *Engine) instant(instant string) (time.Time, error) {
	if instant == "" {
		return e.Now(), nil
	}
	return ParseInstant(instant, e.location)
}

func (e *Engine) resolve(t time.Time) Values {
	return Resolve(t, e.ZoneName())
}
