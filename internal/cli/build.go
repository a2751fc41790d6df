// internal/cli/build.go

package cli

import (
	"github.com/spf13/cobra"
)

// buildCmd forwards `hvctl build` to the task runner. Flag parsing is
// disabled: everything after the verb belongs to the executor, only the
// positional platform shorthand is rewritten by the normalizer.
var buildCmd = &cobra.Command{
	Use:   "build [--plat <name>] [passthrough flags]",
	Short: "Build the hypervisor for a platform",
	Long:  "Ensure the tool environment and a build configuration, then forward the build to the task runner. A bare first argument is shorthand for --plat.",
	Example: `
	hvctl build
	hvctl build aarch64-qemu-virt-hv
	hvctl build --plat aarch64-qemu-virt-hv --verbose
`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTask(cmd.Context(), "build", args, true)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
