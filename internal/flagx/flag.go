// Package flagx lets several components parse their own subset of os.Args
// without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags of args, together with their values.
//
// Supported formats:
//
//	-c conf.json        flag and value as separate arguments
//	--config=conf.json  flag and value joined by '='
//
// A token following an allowed flag is treated as its value unless it starts
// with '-'. Order and repetitions are preserved.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// HasFlag reports whether any of names appears in args as a bare boolean
// switch ("-migrate") or in "-migrate=true" form.
func HasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		for _, n := range names {
			if name != n {
				continue
			}
			if !hasValue {
				return true
			}
			switch strings.ToLower(value) {
			case "1", "t", "true":
				return true
			}
		}
	}
	return false
}

// Value returns the value given to the last occurrence of any of names,
// in either "-name value" or "-name=value" form.
func Value(args []string, names ...string) (string, bool) {
	var (
		value string
		found bool
	)
	filtered := FilterArgs(args, names)
	for i := 0; i < len(filtered); i++ {
		if _, v, ok := strings.Cut(filtered[i], "="); ok {
			value, found = v, true
			continue
		}
		if i+1 < len(filtered) && !strings.HasPrefix(filtered[i+1], "-") {
			value, found = filtered[i+1], true
			i++
		}
	}
	return value, found
}

// JsonConfigFlags returns the config file path given via -c or -config,
// or "" when neither is present. The last occurrence wins.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
