// internal/cli/setup.go

package cli

import (
	"fmt"

	"github.com/hvlab/hvctl/internal/hv"
	"github.com/spf13/cobra"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Bootstrap the cached tool environment",
	Long:  "Make sure the cached tool environment exists and matches the dependency manifest. Does nothing when it is already fresh; --force rebuilds it from scratch.",
	Args:  cobra.NoArgs,
	Example: `
	hvctl setup
	hvctl setup --force
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := locateWorkspace()
		if err != nil {
			return err
		}
		env, err := hv.NewEnvironment(ws)
		if err != nil {
			return err
		}

		if !setupForce {
			if fresh, _ := env.Fresh(); fresh {
				fmt.Println(msg.envFresh)
				return nil
			}
		}

		fmt.Println(msg.envBootstrap)
		if setupForce {
			err = env.Rebuild(cmd.Context())
		} else {
			err = env.Ensure(cmd.Context())
		}
		if err != nil {
			return err
		}
		fmt.Println(msg.envReady)
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "discard the cached environment and bootstrap again")
	rootCmd.AddCommand(setupCmd)
}
