package installer

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/runtime"
	"github.com/blitforge/kernelgate/internal/runtime/executils"
)

// Strategy is one install mechanism offered to the user.
type Strategy interface {
	// Channel describes this strategy to providers and prompts.
	Channel() models.InstallChannel
	// Available reports whether the mechanism can run on this host.
	Available(ctx context.Context) bool
	// Run performs the installation. Blocks until done or ctx is cancelled.
	Run(ctx context.Context, module string, env models.Environment) error
}

// PipStrategy installs via the environment's own interpreter.
type PipStrategy struct {
	runtime *runtime.PythonRuntime
}

func NewPipStrategy(rt *runtime.PythonRuntime) *PipStrategy {
	return &PipStrategy{runtime: rt}
}

func (s *PipStrategy) Channel() models.InstallChannel {
	return models.InstallChannel{ID: "pip", DisplayName: "Pip"}
}

func (s *PipStrategy) Available(ctx context.Context) bool {
	_, err := exec.LookPath(s.runtime.Interpreter())
	return err == nil
}

func (s *PipStrategy) Run(ctx context.Context, module string, env models.Environment) error {
	interpreter := s.runtime.InterpreterFor(env)
	if _, err := executils.ExecCommand(ctx, interpreter, "-m", "pip", "install", module); err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	return nil
}

// CondaStrategy installs via a conda binary on PATH.
type CondaStrategy struct {
	binary string
}

func NewCondaStrategy(binary string) *CondaStrategy {
	if binary == "" {
		binary = "conda"
	}
	return &CondaStrategy{binary: binary}
}

func (s *CondaStrategy) Channel() models.InstallChannel {
	return models.InstallChannel{ID: "conda", DisplayName: "Conda"}
}

func (s *CondaStrategy) Available(ctx context.Context) bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

func (s *CondaStrategy) Run(ctx context.Context, module string, env models.Environment) error {
	args := []string{"install", "-y"}
	switch {
	case env.EnvName != "":
		args = append(args, "-n", env.EnvName)
	case env.Path != "":
		args = append(args, "-p", env.Path)
	}
	args = append(args, module)

	if _, err := executils.ExecCommand(ctx, s.binary, args...); err != nil {
		return fmt.Errorf("conda install failed: %w", err)
	}
	return nil
}

// ContainerPipStrategy installs inside a running container.
type ContainerPipStrategy struct {
	runtime *runtime.ContainerRuntime
}

func NewContainerPipStrategy(rt *runtime.ContainerRuntime) *ContainerPipStrategy {
	return &ContainerPipStrategy{runtime: rt}
}

func (s *ContainerPipStrategy) Channel() models.InstallChannel {
	return models.InstallChannel{ID: "docker", DisplayName: "Pip (container)"}
}

func (s *ContainerPipStrategy) Available(ctx context.Context) bool {
	return s.runtime != nil
}

func (s *ContainerPipStrategy) Run(ctx context.Context, module string, env models.Environment) error {
	return s.runtime.InstallModule(ctx, module, env)
}
