// internal/cli/status.go

package cli

import (
	stdjson "encoding/json"
	"fmt"
	"os"

	"github.com/hvlab/hvctl/internal/config"
	"github.com/hvlab/hvctl/internal/hv"
	"github.com/spf13/cobra"
)

var (
	statusJSON  bool
	statusColor string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workspace status (read-only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Status is read-only and useful even outside a workspace; fall
		// back to the current directory and let the report say what is
		// missing.
		ws, err := hv.Locate("")
		if err != nil {
			wd, werr := os.Getwd()
			if werr != nil {
				return werr
			}
			ws = hv.Workspace{Root: wd}
		}
		rep := hv.Status(ws)

		if statusJSON {
			js, err := stdjson.MarshalIndent(rep, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(js))
			return nil
		}

		colored, err := resolveColorEnabled(statusColor, os.Stdout)
		if err != nil {
			return err
		}
		yes := paint(colored, ansiGreen, "yes")
		no := paint(colored, ansiRed, "no")
		flag := func(b bool) string {
			if b {
				return yes
			}
			return no
		}

		fmt.Printf("root: %s\n", rep.Root)
		fmt.Printf("config: %s\n", rep.ConfigPath)
		fmt.Printf("configPresent: %s\n", flag(rep.HasConfig))
		fmt.Printf("templatePresent: %s\n", flag(rep.HasTemplate))
		fmt.Printf("env: %s\n", rep.EnvDir)
		if rep.EnvFresh {
			fmt.Printf("envFresh: %s\n", yes)
		} else {
			fmt.Printf("envFresh: %s (%s)\n", no, paint(colored, ansiYellow, rep.EnvStaleReason))
		}
		fmt.Printf("python: %s\n", flag(rep.InterpreterOK))
		if rep.InterpreterOK {
			fmt.Printf("interpreter: %s\n", rep.Interpreter)
		}
		fmt.Printf("cargo: %s\n", flag(rep.CargoOK))
		fmt.Printf("taskRunner: %s\n", flag(rep.TaskScriptOK))

		if rep.HasConfig {
			if conf, err := config.Load(rep.ConfigPath); err == nil {
				if conf.Plat != "" {
					fmt.Printf("plat: %s\n", conf.Plat)
				}
				for _, vm := range conf.VMConfigs {
					fmt.Printf("vmconfig: %s\n", vm)
				}
			} else {
				fmt.Printf("configError: %s\n", err)
			}
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&statusJSON, "json", "j", false, "print machine-readable JSON")
	statusCmd.Flags().StringVar(&statusColor, "color", "auto", "colorize output (auto|always|never)")
	rootCmd.AddCommand(statusCmd)
}
