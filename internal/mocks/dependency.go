package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/blitforge/kernelgate/internal/core/models"
)

type MockInstalledStateSource struct {
	mock.Mock
}

func (m *MockInstalledStateSource) IsInstalled(ctx context.Context, module string, env models.Environment) (models.InstallState, error) {
	args := m.Called(ctx, module, env)
	return args.Get(0).(models.InstallState), args.Error(1)
}

type MockChannelProvider struct {
	mock.Mock
}

func (m *MockChannelProvider) InstallationChannels(ctx context.Context) ([]models.InstallChannel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InstallChannel), args.Error(1)
}

type MockInstaller struct {
	mock.Mock
}

func (m *MockInstaller) Install(ctx context.Context, module string, env models.Environment, channel models.InstallChannel) (models.InstallResult, error) {
	args := m.Called(ctx, module, env, channel)
	return args.Get(0).(models.InstallResult), args.Error(1)
}

type MockPromptService struct {
	mock.Mock
}

func (m *MockPromptService) ShowChoice(ctx context.Context, message string, options []string) (string, error) {
	args := m.Called(ctx, message, options)
	return args.String(0), args.Error(1)
}

type MockNameLookup struct {
	mock.Mock
}

func (m *MockNameLookup) DisplayName(module string) (string, error) {
	args := m.Called(module)
	return args.String(0), args.Error(1)
}

type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) Channel() models.InstallChannel {
	args := m.Called()
	return args.Get(0).(models.InstallChannel)
}

func (m *MockStrategy) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockStrategy) Run(ctx context.Context, module string, env models.Environment) error {
	args := m.Called(ctx, module, env)
	return args.Error(0)
}
