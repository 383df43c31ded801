package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/runtime/executils"
	"github.com/blitforge/kernelgate/pkg/logger"
)

var moduleNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// PythonRuntime probes local Python environments for installed modules by
// importing them in a subprocess of the environment's interpreter.
type PythonRuntime struct {
	interpreter string
}

// NewPythonRuntime creates a runtime probe. When interpreter is empty the
// first of python3/python found on PATH is used for environments that carry
// no interpreter path of their own.
func NewPythonRuntime(interpreter string) (*PythonRuntime, error) {
	if interpreter == "" {
		discovered, err := DiscoverInterpreter()
		if err != nil {
			return nil, err
		}
		interpreter = discovered
	}

	return &PythonRuntime{interpreter: interpreter}, nil
}

// DiscoverInterpreter resolves a Python interpreter from PATH.
func DiscoverInterpreter() (string, error) {
	for _, candidate := range []string{"python3", "python"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}

// Interpreter returns the interpreter used for environments without a path.
func (r *PythonRuntime) Interpreter() string {
	return r.interpreter
}

// InterpreterFor returns the interpreter that addresses the environment.
func (r *PythonRuntime) InterpreterFor(env models.Environment) string {
	if env.Path != "" {
		return env.Path
	}
	return r.interpreter
}

func (r *PythonRuntime) IsInstalled(ctx context.Context, module string, env models.Environment) (models.InstallState, error) {
	log := logger.WithComponent("runtime.python")

	if !moduleNamePattern.MatchString(module) {
		return models.StateUnknown, fmt.Errorf("invalid module name: %q", module)
	}

	interpreter := r.InterpreterFor(env)
	output, err := executils.ExecCommand(ctx, interpreter, "-c", fmt.Sprintf("import %s", module))
	if err == nil {
		return models.StateInstalled, nil
	}

	if ctx.Err() != nil {
		return models.StateUnknown, ctx.Err()
	}

	state := ClassifyImportFailure(string(output))
	log.Debug().
		Str("module", module).
		Str("interpreter", interpreter).
		Str("state", string(state)).
		Msg("Import probe failed")

	if state == models.StateUnknown {
		return state, err
	}
	return state, nil
}

// ClassifyImportFailure maps an import probe's combined output to a state.
// A missing module is a definite not-installed answer; anything else (a
// broken interpreter, a crashing sitecustomize) stays unknown.
func ClassifyImportFailure(output string) models.InstallState {
	if strings.Contains(output, "ModuleNotFoundError") || strings.Contains(output, "ImportError") {
		return models.StateNotInstalled
	}
	return models.StateUnknown
}
