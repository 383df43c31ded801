package runtime

import (
	"bytes"
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/utils/contextutil"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// ContainerRuntime probes and installs modules inside a running container.
// The environment's Path addresses the container by name or id.
type ContainerRuntime struct {
	client *client.Client
	python string
}

func NewContainerRuntime(python string) (*ContainerRuntime, error) {
	log := logger.WithComponent("runtime.docker")

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Docker client")
		return nil, fmt.Errorf("docker client creation failed: %w", err)
	}

	pingCtx, cancel := contextutil.WithShortTimeout()
	defer cancel()
	if _, err := cli.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("docker is not available: %w", err)
	}

	if python == "" {
		python = "python3"
	}

	return &ContainerRuntime{client: cli, python: python}, nil
}

func (r *ContainerRuntime) IsInstalled(ctx context.Context, module string, env models.Environment) (models.InstallState, error) {
	if !moduleNamePattern.MatchString(module) {
		return models.StateUnknown, fmt.Errorf("invalid module name: %q", module)
	}
	if env.Path == "" {
		return models.StateUnknown, fmt.Errorf("environment %s has no container reference", env.Label())
	}

	exitCode, output, err := r.exec(ctx, env.Path, []string{r.python, "-c", fmt.Sprintf("import %s", module)})
	if err != nil {
		if ctx.Err() != nil {
			return models.StateUnknown, ctx.Err()
		}
		return models.StateUnknown, err
	}
	if exitCode == 0 {
		return models.StateInstalled, nil
	}

	return ClassifyImportFailure(output), nil
}

// InstallModule runs a pip install of the module inside the container.
func (r *ContainerRuntime) InstallModule(ctx context.Context, module string, env models.Environment) error {
	log := logger.WithComponent("runtime.docker")

	if !moduleNamePattern.MatchString(module) {
		return fmt.Errorf("invalid module name: %q", module)
	}
	if env.Path == "" {
		return fmt.Errorf("environment %s has no container reference", env.Label())
	}

	exitCode, output, err := r.exec(ctx, env.Path, []string{r.python, "-m", "pip", "install", module})
	if err != nil {
		return err
	}
	if exitCode != 0 {
		log.Error().
			Int("exit_code", exitCode).
			Str("container", env.Path).
			Msg("In-container install failed")
		return fmt.Errorf("pip install of %s in container %s exited with code %d: %s", module, env.Path, exitCode, output)
	}

	return nil
}

func (r *ContainerRuntime) exec(ctx context.Context, containerID string, cmd []string) (int, string, error) {
	execResp, err := r.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return -1, "", fmt.Errorf("exec create failed: %w", err)
	}

	attach, err := r.client.ContainerExecAttach(ctx, execResp.ID, container.ExecAttachOptions{})
	if err != nil {
		return -1, "", fmt.Errorf("exec attach failed: %w", err)
	}
	defer attach.Close()

	var out bytes.Buffer
	if _, err := stdcopy.StdCopy(&out, &out, attach.Reader); err != nil && ctx.Err() == nil {
		return -1, out.String(), fmt.Errorf("exec output read failed: %w", err)
	}

	inspect, err := r.client.ContainerExecInspect(ctx, execResp.ID)
	if err != nil {
		return -1, out.String(), fmt.Errorf("exec inspect failed: %w", err)
	}

	return inspect.ExitCode, out.String(), nil
}
