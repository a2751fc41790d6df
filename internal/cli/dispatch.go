// internal/cli/dispatch.go

package cli

import (
	"context"
	"fmt"

	"github.com/hvlab/hvctl/internal/config"
	"github.com/hvlab/hvctl/internal/hv"
)

// invokeTask is the shared pipeline behind every executor-backed verb:
// help-flag scan, environment readiness, optional config ensure, argument
// normalization, then the forwarded call itself. The task runner's exit
// code travels back unchanged inside *hv.ExitError.
func invokeTask(ctx context.Context, verb string, args []string, needsConfig bool) error {
	ws, err := locateWorkspace()
	if err != nil {
		return err
	}
	env, err := hv.NewEnvironment(ws)
	if err != nil {
		return err
	}

	// The executor owns its own help text. Environment readiness is still
	// required; the config is not.
	if hv.HasHelpFlag(args) {
		if err := env.Ensure(ctx); err != nil {
			return err
		}
		return env.RunTask(ctx, verb, []string{"--help"})
	}

	if err := env.Ensure(ctx); err != nil {
		return err
	}

	if needsConfig {
		outcome, err := config.Ensure(ws.ConfigPath(), ws.TemplatePath())
		if err != nil {
			return err
		}
		switch outcome {
		case config.OutcomeCreated:
			fmt.Printf(msg.configCreated+"\n", hv.ConfigFileName)
		case config.OutcomeNoTemplate:
			fmt.Printf(msg.warnConfigAbsent+"\n", hv.ConfigFileName)
		}
	}

	return env.RunTask(ctx, verb, hv.Normalize(verb, args))
}
