// Package cfgdebug provides environment-variable-gated trace logging for
// the cascade pipeline. Every trace point is a no-op unless its variable
// is set, so the normal path never pays for formatting.
package cfgdebug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type flags struct {
	Include  bool
	Resolve  bool
	Relocate bool
}

var d *flags

func init() {
	d = &flags{
		Include:  boolEnv("CASCADE_DEBUG_INCLUDE"),
		Resolve:  boolEnv("CASCADE_DEBUG_RESOLVE"),
		Relocate: boolEnv("CASCADE_DEBUG_RELOCATE"),
	}
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

// Include reports whether include-loader tracing is enabled.
func Include() bool { return d.Include }

// Resolve reports whether resolver tracing is enabled.
func Resolve() bool { return d.Resolve }

// Relocate reports whether relocation tracing is enabled.
func Relocate() bool { return d.Relocate }

// Logf writes a formatted trace line to stderr. Arguments that are not
// plain scalars are JSON-encoded first so structured values print legibly.
func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case bool, string, float64, int, nil:
		default:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
