package tjdate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"gopkg.in/yaml.v3"

	"github.com/jlrickert/tjdate/pkg/datefmt"
	"github.com/jlrickert/tjdate/pkg/internal"
)

// Config is the optional user configuration
// ($XDG_CONFIG_HOME/tjdate/config.yaml or config.toml).
type Config struct {
	// DefaultFormat replaces datefmt.DefaultTemplate when set.
	DefaultFormat string `yaml:"defaultFormat,omitempty" toml:"defaultFormat" validate:"omitempty,max=1024"`

	// PlaceholderPolicy is "permissive" (default) or "strict".
	PlaceholderPolicy string `yaml:"placeholderPolicy,omitempty" toml:"placeholderPolicy" validate:"omitempty,oneof=permissive strict"`

	// Timezone is an IANA name used instead of the machine zone for "now"
	// and for instants without an explicit zone.
	Timezone string `yaml:"timezone,omitempty" toml:"timezone" validate:"omitempty,timezone"`

	// ZoneName fixes the text rendered for ${tzName}.
	ZoneName string `yaml:"tzName,omitempty" toml:"tzName" validate:"omitempty,max=128"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{PlaceholderPolicy: string(datefmt.PolicyPermissive)}
}

// DefaultConfigPath returns the first existing config file in the user config
// directory of rt. ok is false when there is none.
func DefaultConfigPath(rt *toolkit.Runtime) (path string, ok bool, err error) {
	dir, err := internal.GetConfigDir(rt, ConfigAppName)
	if err != nil {
		return "", false, err
	}
	path, ok = internal.FindConfigFile(rt, dir, ConfigFileNames...)
	return path, ok, nil
}

// ParseConfig decodes raw as TOML when format is "toml" and as YAML
// otherwise, then validates the result.
func ParseConfig(raw []byte, format string) (*Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, NewInvalidConfigError("", err.Error())
		}
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, NewInvalidConfigError("", err.Error())
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig reads and parses the config file at path through rt. The format
// follows the file extension.
func ReadConfig(rt *toolkit.Runtime, path string) (*Config, error) {
	lg := rt.Logger()
	b, err := rt.ReadFile(path)
	if err != nil {
		lg.Debug("failed to read config", "path", path, "err", err)
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(b, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		var ice *InvalidConfigError
		if errors.As(err, &ice) && ice.Path == "" {
			ice.Path = path
		}
		lg.Error("failed to parse config", "path", path, "err", err)
		return nil, err
	}
	lg.Info("config read", "path", path, "config", *cfg)
	return cfg, nil
}

// LoadConfig reads path, or the default config file when path is empty.
// A missing default file yields DefaultConfig; the returned path is then
// empty.
func LoadConfig(rt *toolkit.Runtime, path string) (*Config, string, error) {
	if path == "" {
		found, ok, err := DefaultConfigPath(rt)
		if err != nil || !ok {
			rt.Logger().Debug("no config file, using defaults", "err", err)
			return DefaultConfig(), "", nil
		}
		path = found
	} else {
		abs, err := rt.ResolvePath(path, false)
		if err != nil {
			return nil, path, fmt.Errorf("resolve config path: %w", err)
		}
		path = abs
	}
	cfg, err := ReadConfig(rt, path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that DefaultFormat compiles under
// the configured placeholder policy.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q (value %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return NewInvalidConfigError("", strings.Join(msgs, "; "))
		}
		return NewInvalidConfigError("", err.Error())
	}
	if c.DefaultFormat != "" {
		if _, err := datefmt.Compile(c.DefaultFormat, c.Policy()); err != nil {
			return NewInvalidConfigError("", err.Error())
		}
	}
	return nil
}

// Policy returns the configured placeholder policy.
func (c *Config) Policy() datefmt.PlaceholderPolicy {
	if c.PlaceholderPolicy == "" {
		return datefmt.PolicyPermissive
	}
	return datefmt.PlaceholderPolicy(c.PlaceholderPolicy)
}

// EngineOptions converts the config into engine options.
func (c *Config) EngineOptions() ([]datefmt.Option, error) {
	opts := []datefmt.Option{
		datefmt.WithPolicy(c.Policy()),
		datefmt.WithDefaultTemplate(c.DefaultFormat),
		datefmt.WithZoneName(c.ZoneName),
	}
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, NewInvalidConfigError("", fmt.Sprintf("timezone: %v", err))
		}
		opts = append(opts, datefmt.WithLocation(loc))
	}
	return opts, nil
}
