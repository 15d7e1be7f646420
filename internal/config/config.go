package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ghodss/yaml"
)

// DefaultFile is read when -config is not given.
const DefaultFile = "sparkcalc.yaml"

// Config is the on-disk configuration.
type Config struct {
	Locale    string `json:"locale"`
	Audio     bool   `json:"audio"`
	Scale     int    `json:"scale"`
	Hz        int    `json:"hz"`
	LogLevel  string `json:"log_level"`
	TapeLines int    `json:"tape_lines"`
}

func Default() Config {
	return Config{
		Locale:    "pt-BR",
		Audio:     false,
		Scale:     2,
		Hz:        60,
		LogLevel:  "info",
		TapeLines: 6,
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Locale {
	case "pt-BR", "en-US":
	default:
		errs = append(errs, fmt.Errorf("locale: unsupported %q (want pt-BR or en-US)", c.Locale))
	}
	if c.Scale < 1 || c.Scale > 8 {
		errs = append(errs, fmt.Errorf("scale: %d out of range 1..8", c.Scale))
	}
	if c.Hz < 1 || c.Hz > 1000 {
		errs = append(errs, fmt.Errorf("hz: %d out of range 1..1000", c.Hz))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.TapeLines < 0 || c.TapeLines > 12 {
		errs = append(errs, fmt.Errorf("tape_lines: %d out of range 0..12", c.TapeLines))
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}
