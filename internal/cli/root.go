// internal/cli/root.go

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hvlab/hvctl/internal/hv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hvctl",
	Short: "Build and run orchestration for the hypervisor workspace",
	Long: `hvctl is the single entry point for working on the hypervisor tree.

It keeps the cached tool environment fresh, makes sure a build
configuration exists, and forwards build, run, lint and disk-image verbs
to the workspace task runner with canonicalized arguments.

Verbs that shell out mirror the task runner's exit code verbatim; hvctl
itself only ever fails with exit code 1 for orchestration errors.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagVerbose bool
	flagQuiet   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable orchestration debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only print errors")
	cobra.OnInitialize(initLogging)
}

// Execute runs the command tree and maps the result to a process exit
// code. External-process failures keep the child's code; signal-driven
// termination surfaces as 128+N; everything orchestration-local is 1.
func Execute() int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		if strings.Contains(err.Error(), "unknown command") {
			fmt.Fprintf(os.Stderr, "Run 'hvctl help' to see available commands.\n")
		}
		return hv.ExitCode(err)
	}
	return 0
}

// locateWorkspace anchors all paths once per invocation.
func locateWorkspace() (hv.Workspace, error) {
	ws, err := hv.Locate("")
	if err != nil {
		if errors.Is(err, hv.ErrWorkspaceNotFound) {
			return hv.Workspace{}, errors.New(msg.noWorkspace)
		}
		return hv.Workspace{}, err
	}
	return ws, nil
}
