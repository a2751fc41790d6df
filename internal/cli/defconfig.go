// internal/cli/defconfig.go

package cli

import (
	"errors"
	"fmt"

	"github.com/hvlab/hvctl/internal/config"
	"github.com/hvlab/hvctl/internal/hv"
	"github.com/spf13/cobra"
)

var defconfigYes bool

// defconfigCmd is the explicit configuration path: copy the checked-in
// default template over the working config, asking before clobbering user
// edits. Declining is a clean exit, not an error.
var defconfigCmd = &cobra.Command{
	Use:     "defconfig",
	Aliases: []string{"config-init"},
	Short:   "Write the default build configuration",
	Args:    cobra.NoArgs,
	Example: `
	hvctl defconfig
	hvctl defconfig --yes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := locateWorkspace()
		if err != nil {
			return err
		}

		outcome, err := config.WriteDefault(
			ws.ConfigPath(), ws.TemplatePath(),
			!defconfigYes,
			cmd.InOrStdin(), cmd.OutOrStdout(),
		)
		if errors.Is(err, config.ErrNoDefaultTemplate) {
			return fmt.Errorf(msg.warnNoTemplate, ws.TemplatePath())
		}
		if err != nil {
			return err
		}
		switch outcome {
		case config.OutcomeExisting:
			fmt.Printf(msg.configExists+"\n", hv.ConfigFileName)
		case config.OutcomeSkipped:
			fmt.Printf(msg.configSkipped+"\n", hv.ConfigFileName)
		case config.OutcomeCreated, config.OutcomeOverwritten:
			fmt.Printf(msg.configOverwrote+"\n", hv.ConfigFileName)
		}
		return nil
	},
}

func init() {
	defconfigCmd.Flags().BoolVarP(&defconfigYes, "yes", "y", false, "overwrite an existing config without asking")
	rootCmd.AddCommand(defconfigCmd)
}
