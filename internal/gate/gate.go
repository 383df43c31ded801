package gate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/core/ports"
	"github.com/blitforge/kernelgate/internal/utils/contextutil"
	"github.com/blitforge/kernelgate/pkg/logger"
)

// Gate decides whether kernel startup may proceed in an environment. It
// checks the required module and, when missing, negotiates its installation
// with the operator. Each call is independent; no state is shared across
// concurrent calls.
type Gate struct {
	module    string
	source    ports.InstalledStateSource
	channels  ports.ChannelProvider
	installer ports.Installer
	prompt    ports.PromptService
	names     ports.NameLookup
}

func New(source ports.InstalledStateSource, channels ports.ChannelProvider, installer ports.Installer, prompt ports.PromptService, names ports.NameLookup) *Gate {
	return &Gate{
		module:    models.KernelModule,
		source:    source,
		channels:  channels,
		installer: installer,
		prompt:    prompt,
		names:     names,
	}
}

// Module returns the module identifier this gate guards.
func (g *Gate) Module() string {
	return g.module
}

// CheckInstalled reports whether the required module is present in the
// environment. Anything other than an affirmative installed state, including
// probe errors and cancellation, counts as not installed. It never prompts
// and never mutates environment state.
func (g *Gate) CheckInstalled(ctx context.Context, env models.Environment) bool {
	log := logger.WithComponent("gate")

	state, err := g.source.IsInstalled(ctx, g.module, env)
	if err != nil {
		log.Debug().Err(err).
			Str("module", g.module).
			Str("environment", env.Label()).
			Msg("Installed-state probe failed, treating module as missing")
		return false
	}

	return state == models.StateInstalled
}

type promptSettled struct {
	choice string
	err    error
}

type installSettled struct {
	result models.InstallResult
	err    error
}

// EnsureInstalled runs the full interactive installation workflow. It returns
// OutcomeOK only when the module is already present or the installer reported
// success. Declines and cancellation resolve to OutcomeCancel without error;
// collaborator failures propagate unchanged.
func (g *Gate) EnsureInstalled(ctx context.Context, env models.Environment) (models.Outcome, error) {
	log := logger.WithComponent("gate").With().
		Str("workflow_id", uuid.New().String()).
		Str("module", g.module).
		Str("environment", env.Label()).
		Logger()

	if g.CheckInstalled(ctx, env) {
		log.Debug().Msg("Module already installed")
		return models.OutcomeOK, nil
	}

	// The installer and prompt must always see a live cancellation signal,
	// even when the caller passed a background context.
	wctx, cancel := contextutil.MergeCancel(ctx)
	defer cancel()

	productName, err := g.names.DisplayName(g.module)
	if err != nil {
		return models.OutcomeCancel, fmt.Errorf("display name lookup failed for %s: %w", g.module, err)
	}

	channels, err := g.channels.InstallationChannels(wctx)
	if err != nil {
		return models.OutcomeCancel, fmt.Errorf("failed to fetch installation channels: %w", err)
	}

	message := fmt.Sprintf("The following module is required to launch the kernel: %s. %s does not have it installed.", productName, env.Label())
	options := make([]string, len(channels))
	for i, channel := range channels {
		options[i] = channel.DisplayName
	}

	promptCh := make(chan promptSettled, 1)
	go func() {
		choice, promptErr := g.prompt.ShowChoice(wctx, message, options)
		promptCh <- promptSettled{choice: choice, err: promptErr}
	}()

	var choice string
	select {
	case <-wctx.Done():
		log.Info().Msg("Workflow cancelled while prompting")
		return models.OutcomeCancel, nil
	case settled := <-promptCh:
		// Cancellation wins over whatever the prompt produced.
		if wctx.Err() != nil {
			log.Info().Msg("Workflow cancelled while prompting")
			return models.OutcomeCancel, nil
		}
		if settled.err != nil {
			return models.OutcomeCancel, fmt.Errorf("channel prompt failed: %w", settled.err)
		}
		choice = settled.choice
	}

	if choice == "" {
		log.Info().Msg("Prompt dismissed without a selection")
		return models.OutcomeCancel, nil
	}

	channel, ok := matchChannel(channels, choice)
	if !ok {
		// A selection that matches no known channel is treated as no
		// selection at all.
		log.Warn().Str("selection", choice).Msg("Selection matched no install channel")
		return models.OutcomeCancel, nil
	}

	log.Info().Str("channel", channel.DisplayName).Msg("Installing module")

	installCh := make(chan installSettled, 1)
	go func() {
		result, installErr := g.installer.Install(wctx, g.module, env, channel)
		installCh <- installSettled{result: result, err: installErr}
	}()

	select {
	case <-wctx.Done():
		log.Info().Str("channel", channel.DisplayName).Msg("Workflow cancelled during install")
		return models.OutcomeCancel, nil
	case settled := <-installCh:
		if wctx.Err() != nil {
			log.Info().Str("channel", channel.DisplayName).Msg("Workflow cancelled during install")
			return models.OutcomeCancel, nil
		}
		if settled.err != nil {
			return models.OutcomeCancel, fmt.Errorf("install via %s failed: %w", channel.DisplayName, settled.err)
		}
		if settled.result == models.ResultInstalled {
			log.Info().Str("channel", channel.DisplayName).Msg("Module installed")
			return models.OutcomeOK, nil
		}
		log.Info().
			Str("channel", channel.DisplayName).
			Str("result", string(settled.result)).
			Msg("Installer finished without installing")
		return models.OutcomeCancel, nil
	}
}

func matchChannel(channels []models.InstallChannel, displayName string) (models.InstallChannel, bool) {
	for _, channel := range channels {
		if channel.DisplayName == displayName {
			return channel, true
		}
	}
	return models.InstallChannel{}, false
}
