// Package flagx lets several independent flag sets share os.Args without
// tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values, and drops everything else.
//
// Accepted forms are "-f value" and "-f=value". A flag listed in boolFlags
// never consumes the following argument, so "-memory -a :80" keeps only
// "-memory" when -a is not allowed.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	valued := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		valued[f] = true
	}
	for _, f := range boolFlags {
		valued[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		takesValue, ok := valued[name]
		if !ok {
			continue
		}
		out = append(out, arg)

		if hasValue || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigPath returns the JSON config path given with -c or -config, or ""
// when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
