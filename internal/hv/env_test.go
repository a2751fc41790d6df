// internal/hv/env_test.go

package hv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter writes a shell script that records every invocation and
// exits 0, and points HVCTL_PYTHON at it.
func fakeInterpreter(t *testing.T, dir string, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script interpreter stub requires sh")
	}
	calls := filepath.Join(dir, "calls.log")
	script := filepath.Join(dir, "fakepython")
	content := "#!/bin/sh\necho \"$@\" >> " + calls + "\n" + body + "\nexit 0\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))
	t.Setenv("HVCTL_PYTHON", script)
	return calls
}

func countCalls(t *testing.T, calls string) int {
	t.Helper()
	data, err := os.ReadFile(calls)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(strings.Split(strings.TrimSpace(string(data)), "\n"))
}

func newTestWorkspace(t *testing.T) Workspace {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "task.py"), []byte("# task runner\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "requirements.txt"), []byte("toml\n"), 0o644))
	return Workspace{Root: dir}
}

// installEntryPoint simulates what the bootstrap step leaves behind.
func installEntryPoint(t *testing.T, ws Workspace) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(ws.EnvDir(), "bin"), 0o755))
	require.NoError(t, os.WriteFile(ws.EnvPython(), []byte("#!/bin/sh\nexit 0\n"), 0o755))
}

func TestMissingInterpreter(t *testing.T) {
	t.Setenv("HVCTL_PYTHON", "/nonexistent/fakepython")
	_, err := NewEnvironment(newTestWorkspace(t))
	require.ErrorIs(t, err, ErrMissingInterpreter)
}

func TestEnsureBootstrapsOnceWhenStale(t *testing.T) {
	ws := newTestWorkspace(t)
	calls := fakeInterpreter(t, t.TempDir(), "")
	installEntryPoint(t, ws)

	env, err := NewEnvironment(ws)
	require.NoError(t, err)

	// No freshness marker yet: first Ensure bootstraps.
	fresh, reason := env.Fresh()
	require.False(t, fresh)
	assert.Equal(t, "freshness marker missing", reason)
	require.NoError(t, env.Ensure(context.Background()))
	assert.Equal(t, 1, countCalls(t, calls))

	// Fresh now: repeated calls perform no work.
	fresh, _ = env.Fresh()
	require.True(t, fresh)
	require.NoError(t, env.Ensure(context.Background()))
	require.NoError(t, env.Ensure(context.Background()))
	assert.Equal(t, 1, countCalls(t, calls))
}

func TestEnsureRetriggersOnNewerManifest(t *testing.T) {
	ws := newTestWorkspace(t)
	calls := fakeInterpreter(t, t.TempDir(), "")
	installEntryPoint(t, ws)

	env, err := NewEnvironment(ws)
	require.NoError(t, err)
	require.NoError(t, env.Ensure(context.Background()))
	require.Equal(t, 1, countCalls(t, calls))

	// Age the marker below the manifest's mtime: stale again.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(ws.StampPath(), past, past))

	fresh, reason := env.Fresh()
	require.False(t, fresh)
	assert.Equal(t, "dependency manifest newer than marker", reason)

	// Exactly one more bootstrap, then Ready again.
	require.NoError(t, env.Ensure(context.Background()))
	assert.Equal(t, 2, countCalls(t, calls))
	fresh, _ = env.Fresh()
	assert.True(t, fresh)
}

func TestFreshnessDetectsChangedManifestContent(t *testing.T) {
	ws := newTestWorkspace(t)
	fakeInterpreter(t, t.TempDir(), "")
	installEntryPoint(t, ws)

	env, err := NewEnvironment(ws)
	require.NoError(t, err)
	require.NoError(t, env.Ensure(context.Background()))

	// Rewrite the manifest but keep its mtime at the marker's time.
	st, err := os.Stat(ws.StampPath())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(ws.ManifestPath(), []byte("toml\nrich\n"), 0o644))
	require.NoError(t, os.Chtimes(ws.ManifestPath(), st.ModTime(), st.ModTime()))

	fresh, reason := env.Fresh()
	require.False(t, fresh)
	assert.Equal(t, "dependency manifest changed", reason)
}

func TestFreshnessRequiresEntryPoint(t *testing.T) {
	ws := newTestWorkspace(t)
	fakeInterpreter(t, t.TempDir(), "")

	fresh, reason := Freshness(ws)
	require.False(t, fresh)
	assert.Equal(t, "entry point missing", reason)
}

func TestBootstrapFailureSurfacesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script interpreter stub requires sh")
	}
	ws := newTestWorkspace(t)
	script := filepath.Join(t.TempDir(), "failingpython")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 7\n"), 0o755))
	t.Setenv("HVCTL_PYTHON", script)

	env, err := NewEnvironment(ws)
	require.NoError(t, err)

	err = env.Ensure(context.Background())
	require.ErrorIs(t, err, ErrBootstrapFailed)
	assert.Equal(t, 7, ExitCode(err))
}

func TestRebuildDiscardsEnvDir(t *testing.T) {
	ws := newTestWorkspace(t)
	calls := fakeInterpreter(t, t.TempDir(), "")
	installEntryPoint(t, ws)
	leftover := filepath.Join(ws.EnvDir(), "stale-artifact")
	require.NoError(t, os.WriteFile(leftover, []byte("x"), 0o644))

	env, err := NewEnvironment(ws)
	require.NoError(t, err)
	require.NoError(t, env.Rebuild(context.Background()))

	assert.Equal(t, 1, countCalls(t, calls))
	_, err = os.Stat(leftover)
	assert.True(t, os.IsNotExist(err))
}

func TestRunTaskForwardsVerbAndArgs(t *testing.T) {
	ws := newTestWorkspace(t)
	calls := fakeInterpreter(t, t.TempDir(), "")

	env, err := NewEnvironment(ws)
	require.NoError(t, err)
	require.NoError(t, env.RunTask(context.Background(), "clippy", []string{"--arch", "x86_64"}))

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, ws.TaskScript())
	assert.Contains(t, line, "clippy --arch x86_64")
}
