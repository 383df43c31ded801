package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blitforge/kernelgate/internal/config"
	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/core/ports"
	"github.com/blitforge/kernelgate/internal/gate"
	"github.com/blitforge/kernelgate/internal/installer"
	"github.com/blitforge/kernelgate/internal/prompt"
	"github.com/blitforge/kernelgate/internal/registry"
	"github.com/blitforge/kernelgate/internal/runtime"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

func environmentFromFlags(cmd *cobra.Command, cfg *config.Config) models.Environment {
	displayName, _ := cmd.Flags().GetString("display-name")
	envName, _ := cmd.Flags().GetString("env-name")
	envPath, _ := cmd.Flags().GetString("env-path")
	if envPath == "" && cfg.Runtime.Docker.Enabled {
		envPath = cfg.Runtime.Docker.Container
	}
	return models.Environment{
		DisplayName: displayName,
		EnvName:     envName,
		Path:        envPath,
	}
}

// buildGate wires the dependency gate from config: an installed-state source
// for the host (or a container when configured), the discovered install
// channels, the installer service and the terminal prompt.
func buildGate(cfg *config.Config) (*gate.Gate, error) {
	log := logger.WithComponent("cli")

	pythonRuntime, err := runtime.NewPythonRuntime(cfg.Runtime.Interpreter)
	if err != nil {
		return nil, err
	}

	strategies := []installer.Strategy{
		installer.NewPipStrategy(pythonRuntime),
		installer.NewCondaStrategy(cfg.Install.Conda.Binary),
	}

	var source ports.InstalledStateSource = pythonRuntime
	if cfg.Runtime.Docker.Enabled {
		containerRuntime, err := runtime.NewContainerRuntime(cfg.Runtime.Interpreter)
		if err != nil {
			return nil, err
		}
		source = containerRuntime
		// host channels cannot address a container environment
		strategies = []installer.Strategy{installer.NewContainerPipStrategy(containerRuntime)}
		log.Debug().Str("container", cfg.Runtime.Docker.Container).Msg("Using container runtime")
	}

	enabled := map[string]bool{
		"pip":   cfg.Install.Pip.Enabled,
		"conda": cfg.Install.Conda.Enabled,
	}

	return gate.New(
		source,
		installer.NewProvider(strategies, enabled),
		installer.NewService(strategies, enabled, cfg.Install.Timeout),
		prompt.NewTerminalPrompt(),
		registry.NewNameRegistry(),
	), nil
}
