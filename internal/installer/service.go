package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// Service performs installations through its registered strategies. Declines
// and process failures resolve as InstallResult values; only a missing
// strategy surfaces as an error.
type Service struct {
	strategies map[string]Strategy
	enabled    map[string]bool
	timeout    time.Duration
}

func NewService(strategies []Strategy, enabled map[string]bool, timeout time.Duration) *Service {
	byID := make(map[string]Strategy, len(strategies))
	for _, strategy := range strategies {
		byID[strategy.Channel().ID] = strategy
	}
	if timeout == 0 {
		timeout = 10 * time.Minute
	}
	return &Service{strategies: byID, enabled: enabled, timeout: timeout}
}

func (s *Service) Install(ctx context.Context, module string, env models.Environment, channel models.InstallChannel) (models.InstallResult, error) {
	log := logger.WithComponent("installer").With().
		Str("module", module).
		Str("channel", channel.ID).
		Str("environment", env.Label()).
		Logger()

	strategy, ok := s.strategies[channel.ID]
	if !ok {
		return models.ResultFailed, fmt.Errorf("unknown install channel: %s", channel.ID)
	}

	if enabled, known := s.enabled[channel.ID]; known && !enabled {
		log.Info().Msg("Install channel is disabled")
		return models.ResultDisabled, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log.Info().Msg("Starting install")
	if err := strategy.Run(runCtx, module, env); err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("Install abandoned by cancellation")
			return models.ResultIgnore, nil
		}
		log.Error().Err(err).Msg("Install failed")
		return models.ResultFailed, nil
	}

	log.Info().Msg("Install finished")
	return models.ResultInstalled, nil
}
