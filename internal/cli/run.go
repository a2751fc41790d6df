// internal/cli/run.go

package cli

import (
	"github.com/spf13/cobra"
)

// runCmd boots the built hypervisor through the task runner. Same argument
// contract as build: --plat is the primary parameter, --vmconfigs and any
// other flags pass through untouched.
var runCmd = &cobra.Command{
	Use:   "run [--plat <name>] [--vmconfigs <path>] [passthrough flags]",
	Short: "Run the hypervisor",
	Example: `
	hvctl run
	hvctl run aarch64-qemu-virt-hv
	hvctl run --vmconfigs configs/vms/linux-qemu-aarch64.toml
`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTask(cmd.Context(), "run", args, true)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
