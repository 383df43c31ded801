package gate_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blitforge/kernelgate/internal/core/models"
	"github.com/blitforge/kernelgate/internal/gate"
	"github.com/blitforge/kernelgate/internal/mocks"
	"github.com/blitforge/kernelgate/pkg/logger"
)

type gateFixture struct {
	source    *mocks.MockInstalledStateSource
	channels  *mocks.MockChannelProvider
	installer *mocks.MockInstaller
	prompt    *mocks.MockPromptService
	names     *mocks.MockNameLookup
	gate      *gate.Gate
}

func newGateFixture() *gateFixture {
	logger.InitTest()
	f := &gateFixture{
		source:    &mocks.MockInstalledStateSource{},
		channels:  &mocks.MockChannelProvider{},
		installer: &mocks.MockInstaller{},
		prompt:    &mocks.MockPromptService{},
		names:     &mocks.MockNameLookup{},
	}
	f.gate = gate.New(f.source, f.channels, f.installer, f.prompt, f.names)
	return f
}

var (
	venv       = models.Environment{DisplayName: "venv1"}
	pipChannel = models.InstallChannel{ID: "pip", DisplayName: "pip"}
)

func (f *gateFixture) expectMissingModule() {
	f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateNotInstalled, nil)
	f.names.On("DisplayName", models.KernelModule).Return("IPython Kernel", nil)
	f.channels.On("InstallationChannels", mock.Anything).Return([]models.InstallChannel{pipChannel}, nil)
}

func TestCheckInstalled(t *testing.T) {
	t.Run("installed_state_reports_true", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateInstalled, nil)

		assert.True(t, f.gate.CheckInstalled(context.Background(), venv))
	})

	t.Run("not_installed_reports_false", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateNotInstalled, nil)

		assert.False(t, f.gate.CheckInstalled(context.Background(), venv))
	})

	t.Run("unknown_state_reports_false", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateUnknown, nil)

		assert.False(t, f.gate.CheckInstalled(context.Background(), venv))
	})

	t.Run("probe_error_reports_false", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateUnknown, fmt.Errorf("interpreter exploded"))

		assert.False(t, f.gate.CheckInstalled(context.Background(), venv))
	})
}

func TestEnsureInstalled(t *testing.T) {
	t.Run("already_installed_skips_prompt_and_installer", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateInstalled, nil)

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeOK, outcome)
		f.prompt.AssertNotCalled(t, "ShowChoice", mock.Anything, mock.Anything, mock.Anything)
		f.installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pre_cancelled_context_never_invokes_installer", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, mock.Anything).Return("pip", nil).Maybe()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome, err := f.gate.EnsureInstalled(ctx, venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dismissed_prompt_cancels", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("", nil)

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("install_result_decides_outcome", func(t *testing.T) {
		cases := []struct {
			result  models.InstallResult
			outcome models.Outcome
		}{
			{models.ResultInstalled, models.OutcomeOK},
			{models.ResultIgnore, models.OutcomeCancel},
			{models.ResultDisabled, models.OutcomeCancel},
			{models.ResultFailed, models.OutcomeCancel},
		}

		for _, tc := range cases {
			t.Run(string(tc.result), func(t *testing.T) {
				f := newGateFixture()
				f.expectMissingModule()
				f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("pip", nil)
				f.installer.On("Install", mock.Anything, models.KernelModule, venv, pipChannel).Return(tc.result, nil)

				outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
				assert.NoError(t, err)
				assert.Equal(t, tc.outcome, outcome)
				f.installer.AssertExpectations(t)
			})
		}
	})

	t.Run("cancellation_after_selection_wins_over_install_result", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("pip", nil)

		ctx, cancel := context.WithCancel(context.Background())
		f.installer.On("Install", mock.Anything, models.KernelModule, venv, pipChannel).
			Run(func(args mock.Arguments) { cancel() }).
			Return(models.ResultInstalled, nil)

		outcome, err := f.gate.EnsureInstalled(ctx, venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
	})

	t.Run("installer_receives_cancellable_context", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("pip", nil)

		var installCtx context.Context
		f.installer.On("Install", mock.Anything, models.KernelModule, venv, pipChannel).
			Run(func(args mock.Arguments) { installCtx = args.Get(0).(context.Context) }).
			Return(models.ResultInstalled, nil)

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeOK, outcome)
		// background callers still hand the installer an abortable signal
		assert.NotNil(t, installCtx.Done())
	})

	t.Run("unknown_selection_treated_as_no_selection", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("homebrew", nil)

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name_lookup_error_propagates", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateNotInstalled, nil)
		f.names.On("DisplayName", models.KernelModule).Return("", fmt.Errorf("unknown module"))

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.Error(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.prompt.AssertNotCalled(t, "ShowChoice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("channel_fetch_error_propagates", func(t *testing.T) {
		f := newGateFixture()
		f.source.On("IsInstalled", mock.Anything, models.KernelModule, venv).Return(models.StateNotInstalled, nil)
		f.names.On("DisplayName", models.KernelModule).Return("IPython Kernel", nil)
		f.channels.On("InstallationChannels", mock.Anything).Return(nil, fmt.Errorf("provider offline"))

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.Error(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.prompt.AssertNotCalled(t, "ShowChoice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("prompt_error_propagates", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("", fmt.Errorf("no tty"))

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.Error(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
		f.installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("installer_error_propagates", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).Return("pip", nil)
		f.installer.On("Install", mock.Anything, models.KernelModule, venv, pipChannel).Return(models.ResultFailed, fmt.Errorf("pip crashed"))

		outcome, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.Error(t, err)
		assert.Equal(t, models.OutcomeCancel, outcome)
	})

	t.Run("message_names_module_and_environment", func(t *testing.T) {
		f := newGateFixture()
		f.expectMissingModule()

		var message string
		f.prompt.On("ShowChoice", mock.Anything, mock.Anything, []string{"pip"}).
			Run(func(args mock.Arguments) { message = args.String(1) }).
			Return("", nil)

		_, err := f.gate.EnsureInstalled(context.Background(), venv)
		assert.NoError(t, err)
		assert.Contains(t, message, "IPython Kernel")
		assert.Contains(t, message, "venv1")
	})
}
