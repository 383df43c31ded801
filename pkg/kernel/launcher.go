package kernel

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// Launcher starts a kernel process in an environment once the dependency
// gate has allowed startup.
type Launcher struct {
	interpreter string
}

func NewLauncher(interpreter string) *Launcher {
	return &Launcher{interpreter: interpreter}
}

// Launch runs the kernel in the foreground until it exits or ctx is
// cancelled.
func (l *Launcher) Launch(ctx context.Context, env models.Environment, connectionFile string) error {
	log := logger.WithComponent("kernel")

	interpreter := l.interpreter
	if env.Path != "" {
		interpreter = env.Path
	}

	args := []string{"-m", "ipykernel_launcher"}
	if connectionFile != "" {
		args = append(args, "-f", connectionFile)
	}

	log.Info().
		Str("interpreter", interpreter).
		Str("environment", env.Label()).
		Msg("Starting kernel")

	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("kernel process failed: %w", err)
	}

	return nil
}
