// internal/cli/version.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, injected via -ldflags at release time:
//
//	-X github.com/hvlab/hvctl/internal/cli.version=...
var (
	version = "dev"
	commit  = "none"
	branch  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("hvctl %s\n", version)
		fmt.Printf("branch: %s\n", branch)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		return nil
	},
}

func init() {
	// Wires cobra's --version/-v on the root as well.
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}
