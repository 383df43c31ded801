package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/runtime"
	"github.com/blitforge/kernelgate/pkg/kernel"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// RunLaunch gates on the kernel dependency and then starts the kernel
// process in the foreground.
func RunLaunch(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("cli")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := buildGate(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	env := environmentFromFlags(cmd, cfg)
	outcome, err := g.EnsureInstalled(ctx, env)
	if err != nil {
		return err
	}
	if outcome != models.OutcomeOK {
		log.Info().Str("environment", env.Label()).Msg("Kernel launch declined")
		return fmt.Errorf("kernel dependencies for %s are not satisfied", env.Label())
	}

	connectionFile, _ := cmd.Flags().GetString("connection-file")
	if connectionFile == "" {
		connectionFile = cfg.Kernel.ConnectionFile
	}

	interpreter := cfg.Runtime.Interpreter
	if interpreter == "" {
		interpreter, err = runtime.DiscoverInterpreter()
		if err != nil {
			return err
		}
	}

	launcher := kernel.NewLauncher(interpreter)
	return launcher.Launch(ctx, env, connectionFile)
}
