package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/registry"
)

func TestDisplayName(t *testing.T) {
	r := registry.NewNameRegistry()

	t.Run("kernel_module_resolves", func(t *testing.T) {
		name, err := r.DisplayName(models.KernelModule)
		assert.NoError(t, err)
		assert.Equal(t, "IPython Kernel", name)
	})

	t.Run("unknown_module_is_an_error", func(t *testing.T) {
		_, err := r.DisplayName("leftpad")
		assert.Error(t, err)
	})
}
