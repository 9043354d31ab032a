package config

import (
	"flag"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/flagx"
)

var flagSpec = flagx.Spec{
	Value: []string{"-l", "-f"},
	Bool:  []string{"-d"},
}

// parseFlags overlays cfg with the -l, -f and -d flags found in args. Other
// arguments are filtered out first so they do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("va", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Format, "f", cfg.Format, "summary format (text, json)")
	fs.BoolVar(&cfg.ShowDisclaimer, "d", cfg.ShowDisclaimer, "show the estimate disclaimer")

	if err := fs.Parse(flagx.FilterArgs(args, flagSpec)); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	return nil
}
