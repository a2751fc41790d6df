// internal/cli/diskimg.go

package cli

import (
	"github.com/spf13/cobra"
)

var diskImgCmd = &cobra.Command{
	Use:   "disk_img [--image <name>] [passthrough flags]",
	Short: "Create a guest disk image",
	Long:  "Forward disk image creation to the task runner. The image file name is the primary parameter; a bare first argument is shorthand for --image and the default is disk.img.",
	Example: `
	hvctl disk_img
	hvctl disk_img custom.img --size 128M
`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTask(cmd.Context(), "disk_img", args, false)
	},
}

func init() {
	rootCmd.AddCommand(diskImgCmd)
}
