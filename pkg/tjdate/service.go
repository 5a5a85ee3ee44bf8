package tjdate

import (
	"log/slog"
	"sync"

	"github.com/jlrickert/tjdate/pkg/datefmt"
	"github.com/jlrickert/tjdate/pkg/log"
)

// Service owns the engine built from the current config. Reload swaps in a
// new engine (and with it a fresh formatter cache); callers that captured
// the previous engine keep working against it.
type Service struct {
	mu     sync.RWMutex
	cfg    *Config
	engine *datefmt.Engine

	base   []datefmt.Option
	logger *slog.Logger
}

// NewService builds a Service from cfg. base options (clock, logger, ...)
// are applied before the config-derived options on every build.
func NewService(cfg *Config, lg *slog.Logger, base ...datefmt.Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if lg == nil {
		lg = log.NewNopLogger()
	}
	s := &Service{
		base:   append([]datefmt.Option{datefmt.WithLogger(lg)}, base...),
		logger: lg,
	}
	if err := s.Reload(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Engine returns the current engine.
func (s *Service) Engine() *datefmt.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Config returns the config the current engine was built from.
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cfg
}

// Reload validates cfg and replaces the engine. On error the current engine
// stays in place.
func (s *Service) Reload(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfgOpts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	opts := append(append([]datefmt.Option(nil), s.base...), cfgOpts...)
	engine := datefmt.NewEngine(opts...)

	s.mu.Lock()
	s.cfg = cfg
	s.engine = engine
	s.mu.Unlock()

	s.logger.Debug("engine built",
		"defaultFormat", engine.DefaultTemplate(),
		"policy", string(engine.Policy()),
		"tzName", engine.ZoneName(),
	)
	return nil
}

// Timestamp renders instant (now when empty) with format (default when
// empty) on the current engine.
func (s *Service) Timestamp(instant, format string, debug bool) (string, error) {
	return s.Engine().GetTimestamp(instant, &datefmt.Options{Format: format, Debug: debug})
}
