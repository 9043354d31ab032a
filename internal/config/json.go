package config

import (
	"os"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"github.com/saikaranam22/VA-Demo/internal/flagx"
)

// jsonConfig is the on-disk shape of the config file. Pointer fields tell a
// missing key apart from a zero value.
type jsonConfig struct {
	LogLevel       *string `json:"log_level"`
	Format         *string `json:"format"`
	ShowDisclaimer *bool   `json:"show_disclaimer"`
}

// parseJSON overlays cfg with the file named by -c/-config in args. Without
// such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Format != nil {
		cfg.Format = *jc.Format
	}
	if jc.ShowDisclaimer != nil {
		cfg.ShowDisclaimer = *jc.ShowDisclaimer
	}
	return nil
}
