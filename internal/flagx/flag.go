// Package flagx contains helpers for assembling configuration from several
// sources: a filtered view of the command line, an optional JSON file, and
// environment variables (optionally seeded from .env files).
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs picks the allowed flags (and their values) out of args so a
// flag.FlagSet can parse them while subcommands and other flags pass by.
//
// Each entry of allowed is a flag name, optionally followed by aliases
// separated by "|": "-a|--server" accepts both spellings and emits "-a".
// Supported forms:
//
//	-a value
//	--server=value
//
// A separate value is taken only when it does not start with a dash.
// Scanning stops at "--". The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	canonical := make(map[string]string, len(allowed))
	for _, entry := range allowed {
		names := strings.Split(entry, "|")
		for _, n := range names {
			canonical[n] = names[0]
		}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, value, ok := strings.Cut(arg, "="); ok {
			if c, found := canonical[name]; found {
				filtered = append(filtered, c+"="+value)
			}
			continue
		}

		c, found := canonical[arg]
		if !found {
			continue
		}
		filtered = append(filtered, c)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c, -config or
// --config, or an empty string.
func JsonConfigFlags() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "c", "", "Path to config file")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c|-config|--config"}))

	return path
}
