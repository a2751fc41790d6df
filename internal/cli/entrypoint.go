// internal/cli/entrypoint.go

package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Main is the single bootstrap for the hvctl binary. It resolves intent
// from argv[0] (optional user-created symlink/rename) and then runs the
// command tree, returning the process exit code.
func Main() int {
	rewriteArgsForInvocation()
	return Execute()
}

func rewriteArgsForInvocation() {
	base := strings.ToLower(filepath.Base(os.Args[0]))
	if runtime.GOOS == "windows" {
		base = strings.TrimSuffix(base, ".exe")
	}

	switch base {
	case "hvb":
		os.Args = append([]string{"hvctl", "build"}, os.Args[1:]...)
	case "hvr":
		os.Args = append([]string{"hvctl", "run"}, os.Args[1:]...)
	default:
		// no rewrite
	}
}
