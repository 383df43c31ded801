package ports

import (
	"context"

	"github.com/blitforge/kernelgate/internal/core/models"
)

// InstalledStateSource reports whether a module is present in an environment.
type InstalledStateSource interface {
	IsInstalled(ctx context.Context, module string, env models.Environment) (models.InstallState, error)
}

// ChannelProvider returns the install channels currently available. The set
// is fetched fresh per workflow call and never cached by the gate.
type ChannelProvider interface {
	InstallationChannels(ctx context.Context) ([]models.InstallChannel, error)
}

// Installer performs the installation of a module into an environment using
// the chosen channel. Declines resolve as InstallResult values; only genuine
// collaborator failures surface as errors.
type Installer interface {
	Install(ctx context.Context, module string, env models.Environment, channel models.InstallChannel) (models.InstallResult, error)
}

// PromptService presents a message with selectable options and returns the
// selected option. An empty string means the user dismissed the prompt.
type PromptService interface {
	ShowChoice(ctx context.Context, message string, options []string) (string, error)
}

// NameLookup resolves a module identifier to its human-readable product name.
type NameLookup interface {
	DisplayName(module string) (string, error)
}
