// internal/cli/clippy.go

package cli

import (
	"github.com/spf13/cobra"
)

var clippyCmd = &cobra.Command{
	Use:     "clippy [--arch <name>] [passthrough flags]",
	Aliases: []string{"lint"},
	Short:   "Run lint checks across the workspace",
	Long:    "Forward lint checks to the task runner. The architecture is the primary parameter; a bare first argument is shorthand for --arch and the default is aarch64.",
	Example: `
	hvctl clippy
	hvctl clippy x86_64
	hvctl lint --arch riscv64
`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTask(cmd.Context(), "clippy", args, false)
	},
}

func init() {
	rootCmd.AddCommand(clippyCmd)
}
