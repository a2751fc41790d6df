// internal/hv/env.go

package hv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
)

// Environment is the cached tool environment the external task runner
// executes from. It is owned exclusively by this process; nothing here
// guards against a second hvctl racing on the same workspace.
type Environment struct {
	ws Workspace
	// interp is the system interpreter used for bootstrap and as fallback
	// when the cached environment provides no entry point yet.
	interp []string
}

// NewEnvironment resolves the external interpreter exactly once and binds
// it to the workspace. The interpreter check runs before any staleness
// check, so a broken PATH fails fast for every verb that shells out.
func NewEnvironment(ws Workspace) (*Environment, error) {
	interp, err := resolveInterpreter()
	if err != nil {
		return nil, err
	}
	return &Environment{ws: ws, interp: interp}, nil
}

// resolveInterpreter picks the interpreter command. HVCTL_PYTHON may hold a
// full command string (e.g. "uv run python3") and wins over PATH lookup.
func resolveInterpreter() ([]string, error) {
	if override := strings.TrimSpace(os.Getenv("HVCTL_PYTHON")); override != "" {
		argv, err := shlex.Split(override)
		if err != nil {
			return nil, fmt.Errorf("parse HVCTL_PYTHON: %w", err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("parse HVCTL_PYTHON: empty command")
		}
		if _, err := exec.LookPath(argv[0]); err != nil {
			return nil, fmt.Errorf("HVCTL_PYTHON %q: %w", argv[0], ErrMissingInterpreter)
		}
		return argv, nil
	}
	path, err := exec.LookPath("python3")
	if err != nil {
		return nil, ErrMissingInterpreter
	}
	return []string{path}, nil
}

// Fresh reports whether the cached environment can be used as-is, with a
// human-readable reason when it cannot.
func (e *Environment) Fresh() (bool, string) {
	return Freshness(e.ws)
}

// Freshness checks the cached environment invariant: the entry point exists
// and is executable, and the dependency manifest is not newer (by mtime or
// by content) than the freshness marker written after the last bootstrap.
func Freshness(ws Workspace) (bool, string) {
	entry := ws.EnvPython()
	st, err := os.Stat(entry)
	if err != nil {
		return false, "entry point missing"
	}
	if st.IsDir() || (runtime.GOOS != "windows" && st.Mode()&0o111 == 0) {
		return false, "entry point not executable"
	}

	stampInfo, err := os.Stat(ws.StampPath())
	if err != nil {
		return false, "freshness marker missing"
	}

	manInfo, err := os.Stat(ws.ManifestPath())
	if err != nil {
		// No manifest to be stale against.
		return true, ""
	}
	if manInfo.ModTime().After(stampInfo.ModTime()) {
		return false, "dependency manifest newer than marker"
	}
	recorded, err := os.ReadFile(ws.StampPath())
	if err != nil {
		return false, "freshness marker unreadable"
	}
	sum, err := fileSHA256(ws.ManifestPath())
	if err != nil {
		return false, "dependency manifest unreadable"
	}
	if strings.TrimSpace(string(recorded)) != sum {
		return false, "dependency manifest changed"
	}
	return true, ""
}

// Ensure makes the environment ready, bootstrapping it when stale.
// Repeated calls with a fresh environment perform no work.
func (e *Environment) Ensure(ctx context.Context) error {
	fresh, reason := e.Fresh()
	if fresh {
		log.Debug().Str("env", e.ws.EnvDir()).Msg("environment fresh, skipping bootstrap")
		return nil
	}
	log.Debug().Str("env", e.ws.EnvDir()).Str("reason", reason).Msg("environment stale")
	return e.Bootstrap(ctx)
}

// Rebuild discards the cached environment and bootstraps it from scratch.
func (e *Environment) Rebuild(ctx context.Context) error {
	if err := os.RemoveAll(e.ws.EnvDir()); err != nil {
		return fmt.Errorf("remove %s: %w", e.ws.EnvDir(), err)
	}
	return e.Bootstrap(ctx)
}

// Bootstrap runs the external bootstrap script with no arguments and, on
// success, rewrites the freshness marker. The script's own output streams
// through unchanged.
func (e *Environment) Bootstrap(ctx context.Context) error {
	argv := append(append([]string{}, e.interp...), e.ws.BootstrapScript())
	if err := Execute(ctx, "bootstrap", argv, ExecOptions{Dir: e.ws.Root}); err != nil {
		var xe *ExitError
		if errors.As(err, &xe) {
			return fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
		}
		return err
	}
	return e.writeStamp()
}

func (e *Environment) writeStamp() error {
	sum := "none"
	if _, err := os.Stat(e.ws.ManifestPath()); err == nil {
		s, err := fileSHA256(e.ws.ManifestPath())
		if err != nil {
			return fmt.Errorf("hash manifest: %w", err)
		}
		sum = s
	}
	if err := os.MkdirAll(e.ws.EnvDir(), 0o755); err != nil {
		return fmt.Errorf("create env dir: %w", err)
	}
	if err := os.WriteFile(e.ws.StampPath(), []byte(sum+"\n"), 0o644); err != nil {
		return fmt.Errorf("write freshness marker: %w", err)
	}
	return nil
}

// RunTask forwards one verb to the external task executor and mirrors its
// exit status. The cached interpreter is preferred when present; the system
// one is the fallback so early verbs (clean before any setup) still work.
func (e *Environment) RunTask(ctx context.Context, verb string, args []string) error {
	interp := append([]string{}, e.interp...)
	if st, err := os.Stat(e.ws.EnvPython()); err == nil && !st.IsDir() {
		interp = []string{e.ws.EnvPython()}
	}
	argv := append(interp, e.ws.TaskScript(), verb)
	argv = append(argv, args...)
	return Execute(ctx, "task execution", argv, ExecOptions{
		Dir: e.ws.Root,
		Env: e.childEnv(),
	})
}

// childEnv rebuilds the process environment with the cached environment's
// bin directory first on PATH, deduplicated, keys sorted for determinism.
func (e *Environment) childEnv() []string {
	base := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		base[k] = v
	}

	localBin := filepath.Join(e.ws.EnvDir(), "bin")
	parts := []string{}
	if base["PATH"] != "" {
		parts = strings.Split(base["PATH"], string(os.PathListSeparator))
	}
	seen := map[string]struct{}{}
	dedup := make([]string, 0, len(parts)+1)
	key := func(p string) string {
		p = filepath.Clean(p)
		if runtime.GOOS == "windows" {
			p = strings.ToLower(p)
		}
		return p
	}
	seen[key(localBin)] = struct{}{}
	dedup = append(dedup, localBin)
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, ok := seen[key(p)]; ok {
			continue
		}
		seen[key(p)] = struct{}{}
		dedup = append(dedup, p)
	}
	base["PATH"] = strings.Join(dedup, string(os.PathListSeparator))

	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+base[k])
	}
	return env
}

// Interpreter returns the resolved system interpreter command.
func (e *Environment) Interpreter() []string {
	return append([]string{}, e.interp...)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
