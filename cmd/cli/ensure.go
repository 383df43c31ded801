package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// RunEnsure runs the interactive installation workflow and exits non-zero
// when the dependency was not satisfied.
func RunEnsure(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("kernel dependencies for %s are not satisfied", env.Label())
	}

	log.Info().Str("environment", env.Label()).Msg("Kernel dependencies satisfied")
	return nil
}
