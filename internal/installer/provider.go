package installer

import (
	"context"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// Provider lists the install channels whose strategies are enabled and
// available right now. The list is recomputed on every call.
type Provider struct {
	strategies []Strategy
	enabled    map[string]bool
}

func NewProvider(strategies []Strategy, enabled map[string]bool) *Provider {
	return &Provider{strategies: strategies, enabled: enabled}
}

func (p *Provider) InstallationChannels(ctx context.Context) ([]models.InstallChannel, error) {
	log := logger.WithComponent("installer.provider")

	channels := make([]models.InstallChannel, 0, len(p.strategies))
	for _, strategy := range p.strategies {
		channel := strategy.Channel()
		if !p.isEnabled(channel.ID) {
			log.Debug().Str("channel", channel.ID).Msg("Channel disabled by config")
			continue
		}
		if !strategy.Available(ctx) {
			log.Debug().Str("channel", channel.ID).Msg("Channel unavailable on this host")
			continue
		}
		channels = append(channels, channel)
	}

	return channels, nil
}

func (p *Provider) isEnabled(id string) bool {
	if p.enabled == nil {
		return true
	}
	enabled, ok := p.enabled[id]
	if !ok {
		return true
	}
	return enabled
}
