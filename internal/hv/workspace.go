// internal/hv/workspace.go

package hv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known files inside a hypervisor workspace. All of them are resolved
// relative to the workspace root exactly once, at process start.
const (
	ConfigFileName  = ".hvconfig.toml"
	TemplateRelPath = "configs/defconfig.toml"
	EnvDirName      = ".hvenv"
	StampFileName   = ".stamp"
	ManifestRelPath = "scripts/requirements.txt"
	TaskScriptRel   = "scripts/task.py"
	BootstrapRel    = "scripts/bootstrap.py"
)

var ErrWorkspaceNotFound = errors.New("scripts/task.py not found; run hvctl from a hypervisor workspace")

// Workspace anchors every path the orchestrator touches. It is plain data:
// constructing one performs no filesystem writes.
type Workspace struct {
	Root string
}

// Locate searches from the provided start directory upward for the task
// runner script and returns the workspace rooted at the first match.
// An empty start means the current working directory.
func Locate(start string) (Workspace, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Workspace{}, fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, filepath.FromSlash(TaskScriptRel))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return Workspace{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return Workspace{}, ErrWorkspaceNotFound
}

func (w Workspace) ConfigPath() string   { return filepath.Join(w.Root, ConfigFileName) }
func (w Workspace) TemplatePath() string { return filepath.Join(w.Root, filepath.FromSlash(TemplateRelPath)) }
func (w Workspace) EnvDir() string       { return filepath.Join(w.Root, EnvDirName) }
func (w Workspace) StampPath() string    { return filepath.Join(w.EnvDir(), StampFileName) }
func (w Workspace) ManifestPath() string { return filepath.Join(w.Root, filepath.FromSlash(ManifestRelPath)) }
func (w Workspace) TaskScript() string   { return filepath.Join(w.Root, filepath.FromSlash(TaskScriptRel)) }
func (w Workspace) BootstrapScript() string {
	return filepath.Join(w.Root, filepath.FromSlash(BootstrapRel))
}

// EnvPython is the interpreter entry point installed by the bootstrap step.
func (w Workspace) EnvPython() string {
	return filepath.Join(w.EnvDir(), "bin", "python")
}
