package installer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/installer"
	"github.com/blitforge/kernelgate/pkg/logger"
)

func TestProviderInstallationChannels(t *testing.T) {
	logger.InitTest()

	t.Run("lists_enabled_available_channels_in_order", func(t *testing.T) {
		pip := newMockStrategy("pip")
		pip.On("Available", mock.Anything).Return(true)
		conda := newMockStrategy("conda")
		conda.On("Available", mock.Anything).Return(true)

		provider := installer.NewProvider([]installer.Strategy{pip, conda}, nil)
		channels, err := provider.InstallationChannels(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []models.InstallChannel{
			{ID: "pip", DisplayName: "pip"},
			{ID: "conda", DisplayName: "conda"},
		}, channels)
	})

	t.Run("skips_unavailable_channels", func(t *testing.T) {
		pip := newMockStrategy("pip")
		pip.On("Available", mock.Anything).Return(true)
		conda := newMockStrategy("conda")
		conda.On("Available", mock.Anything).Return(false)

		provider := installer.NewProvider([]installer.Strategy{pip, conda}, nil)
		channels, err := provider.InstallationChannels(context.Background())

		assert.NoError(t, err)
		assert.Len(t, channels, 1)
		assert.Equal(t, "pip", channels[0].ID)
	})

	t.Run("skips_channels_disabled_by_config", func(t *testing.T) {
		pip := newMockStrategy("pip")
		pip.On("Available", mock.Anything).Return(true).Maybe()

		provider := installer.NewProvider([]installer.Strategy{pip}, map[string]bool{"pip": false})
		channels, err := provider.InstallationChannels(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, channels)
	})
}
