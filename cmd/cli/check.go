package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blitforge/kernelgate/pkg/logger"
)

// RunCheck reports whether the kernel module is installed in the target
// environment. It never prompts.
func RunCheck(cmd *cobra.Command, args []string) error {
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
	if g.CheckInstalled(ctx, env) {
		log.Info().Str("environment", env.Label()).Str("module", g.Module()).Msg("Module is installed")
		return nil
	}

	return fmt.Errorf("module %s is not installed in %s", g.Module(), env.Label())
}
