package config

import (
	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/logging"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds runtime settings for the questionnaire CLI.
type Config struct {
	LogLevel       string
	Format         string
	ShowDisclaimer bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.Format = FormatText
	c.ShowDisclaimer = true
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Newf("unknown format %q, want %s or %s", c.Format, FormatText, FormatJSON)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named in args
// (if any), then the flags in args. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
