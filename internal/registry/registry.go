package registry

import (
	"fmt"

	"github.com/blitforge/kernelgate/internal/core/models"
)

// productNames maps module identifiers to the product names shown to users.
var productNames = map[string]string{
	models.KernelModule: "IPython Kernel",
	"jupyter":           "Jupyter",
	"notebook":          "Jupyter Notebook",
}

// NameRegistry resolves module identifiers to human-readable product names.
type NameRegistry struct{}

func NewNameRegistry() *NameRegistry {
	return &NameRegistry{}
}

func (r *NameRegistry) DisplayName(module string) (string, error) {
	name, ok := productNames[module]
	if !ok {
		return "", fmt.Errorf("unknown module: %s", module)
	}
	return name, nil
}
