// internal/hv/status.go

package hv

import "os"

// StatusReport is a read-only snapshot of the workspace state: what exists,
// what is fresh, and which external collaborators are reachable. Gathering
// it never mutates anything and never fails; absence is just reported.
type StatusReport struct {
	Root string `json:"root"`

	ConfigPath  string `json:"configPath"`
	HasConfig   bool   `json:"hasConfig"`
	HasTemplate bool   `json:"hasTemplate"`

	EnvDir         string `json:"envDir"`
	EnvFresh       bool   `json:"envFresh"`
	EnvStaleReason string `json:"envStaleReason,omitempty"`

	InterpreterOK bool   `json:"interpreterOk"`
	Interpreter   string `json:"interpreter,omitempty"`
	CargoOK       bool   `json:"cargoOk"`
	TaskScriptOK  bool   `json:"taskScriptOk"`
}

// Status inspects the workspace without touching it.
func Status(ws Workspace) StatusReport {
	rep := StatusReport{
		Root:       ws.Root,
		ConfigPath: ws.ConfigPath(),
		EnvDir:     ws.EnvDir(),
	}

	if st, err := os.Stat(ws.ConfigPath()); err == nil && !st.IsDir() {
		rep.HasConfig = true
	}
	if st, err := os.Stat(ws.TemplatePath()); err == nil && !st.IsDir() {
		rep.HasTemplate = true
	}
	if st, err := os.Stat(ws.TaskScript()); err == nil && !st.IsDir() {
		rep.TaskScriptOK = true
	}
	rep.CargoOK = LookTool("cargo")

	rep.EnvFresh, rep.EnvStaleReason = Freshness(ws)

	if interp, err := resolveInterpreter(); err == nil {
		rep.InterpreterOK = true
		rep.Interpreter = interp[0]
	}
	return rep
}
