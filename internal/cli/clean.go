// internal/cli/clean.go

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/hvlab/hvctl/internal/hv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// cleanCmd removes build artifacts. Unlike build/run it does not insist on
// a fresh tool environment: a half-torn-down workspace must still be
// cleanable. After the task runner's own clean, the lower-level cargo
// cache is cleaned best-effort; a missing cargo is not a failure.
var cleanCmd = &cobra.Command{
	Use:                "clean [passthrough flags]",
	Short:              "Clean build artifacts",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ws, err := locateWorkspace()
		if err != nil {
			return err
		}
		env, err := hv.NewEnvironment(ws)
		if err != nil {
			return err
		}

		if hv.HasHelpFlag(args) {
			if err := env.Ensure(ctx); err != nil {
				return err
			}
			return env.RunTask(ctx, "clean", []string{"--help"})
		}

		if err := env.RunTask(ctx, "clean", hv.Normalize("clean", args)); err != nil {
			return err
		}

		cargo := cargoCommand()
		if !hv.LookTool(cargo[0]) {
			fmt.Println(msg.cleanSecondarySkipped)
			return nil
		}
		fmt.Println(msg.cleanSecondary)
		if err := hv.Execute(ctx, "cargo clean", append(cargo, "clean"), hv.ExecOptions{Dir: ws.Root}); err != nil {
			// Best-effort by design of the observed tooling; keep it that way.
			log.Warn().Err(err).Msg("cargo clean did not succeed")
		}
		return nil
	},
}

// cargoCommand resolves the secondary cleanup tool, overridable the same
// way as the interpreter (HVCTL_CARGO may be a full command string).
func cargoCommand() []string {
	if override := strings.TrimSpace(os.Getenv("HVCTL_CARGO")); override != "" {
		if argv, err := shlex.Split(override); err == nil && len(argv) > 0 {
			return argv
		}
	}
	return []string{"cargo"}
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
