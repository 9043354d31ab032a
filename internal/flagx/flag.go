// Package flagx lets several small flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Spec lists the flags one parser owns. Bool flags never consume the
// following argument as their value; use -flag=false to switch them off.
type Spec struct {
	Value []string
	Bool  []string
}

func (s Spec) owns(name string) (owned, isBool bool) {
	for _, f := range s.Bool {
		if f == name {
			return true, true
		}
	}
	for _, f := range s.Value {
		if f == name {
			return true, false
		}
	}
	return false, false
}

// FilterArgs returns the arguments that belong to spec, in their original
// order, and drops everything else.
//
// Supported forms:
//
//	-c conf.json       value flag with a separate value
//	--config=conf.json value flag with '='
//	-d                 bool flag
//	-d=false           bool flag with an explicit value
func FilterArgs(args []string, spec Spec) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if owned, _ := spec.owns(name); owned {
				filtered = append(filtered, arg)
			}
			continue
		}

		owned, isBool := spec.owns(arg)
		if !owned {
			continue
		}
		filtered = append(filtered, arg)
		if !isBool && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config path given with -c or -config.
// It returns "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Spec{Value: []string{"-c", "-config", "--config"}}))

	return path
}
