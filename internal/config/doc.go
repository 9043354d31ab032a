// Package config loads runtime configuration for the questionnaire CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-l string   log level: debug, info, warn or error
//	-f string   summary format: text or json
//	-d          print the estimate disclaimer under the summary (-d=false to hide)
//
// # JSON schema
//
//	{
//	  "log_level": "info",
//	  "format": "text",
//	  "show_disclaimer": true
//	}
//
// Keys missing from the file keep the value from the defaults.
package config
