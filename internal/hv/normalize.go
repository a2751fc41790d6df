// internal/hv/normalize.go

package hv

import "strings"

// VerbSpec declares the argument grammar of one task verb: the canonical
// spelling of its primary flag and the built-in default applied when the
// caller names no value at all. An empty Default means the verb has no
// implicit value and bare invocations pass through untouched.
type VerbSpec struct {
	Flag    string
	Default string
}

var verbSpecs = map[string]VerbSpec{
	"build":    {Flag: "--plat"},
	"run":      {Flag: "--plat"},
	"clippy":   {Flag: "--arch", Default: "aarch64"},
	"disk_img": {Flag: "--image", Default: "disk.img"},
	"clean":    {},
}

// Spec returns the declared grammar for verb.
func Spec(verb string) (VerbSpec, bool) {
	sp, ok := verbSpecs[verb]
	return sp, ok
}

// Normalize canonicalizes the arguments of a task verb into named-flag form.
// It is a pure function: the input slice is never mutated and identical
// inputs yield identical outputs. Non-primary arguments keep their order.
//
// Rules, evaluated in order:
//  1. The primary flag is already present: pass everything through.
//  2. The first argument is not flag-like: treat it as the primary value
//     and rewrite it to "<flag> <value>", keeping the rest unchanged.
//  3. Otherwise prepend the verb's default, if it declares one.
func Normalize(verb string, args []string) []string {
	sp, ok := verbSpecs[verb]
	if !ok || sp.Flag == "" {
		return cloneArgs(args)
	}

	for _, a := range args {
		if a == sp.Flag || strings.HasPrefix(a, sp.Flag+"=") {
			return cloneArgs(args)
		}
	}

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		out := make([]string, 0, len(args)+1)
		out = append(out, sp.Flag, args[0])
		return append(out, args[1:]...)
	}

	if sp.Default == "" {
		return cloneArgs(args)
	}
	out := make([]string, 0, len(args)+2)
	out = append(out, sp.Flag, sp.Default)
	return append(out, args...)
}

// HasHelpFlag reports whether the raw arguments request the downstream
// executor's own help output for the verb.
func HasHelpFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "-h", "--help", "help":
			return true
		}
	}
	return false
}

func cloneArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	return out
}
