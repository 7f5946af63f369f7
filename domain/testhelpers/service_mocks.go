package testhelpers

import (
	"context"

	"pengurus/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockGuildConfigService is a mock implementation of GuildConfigService
type MockGuildConfigService struct {
	mock.Mock
}

func (m *MockGuildConfigService) GetOrCreateConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*entities.GuildConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGuildConfigService) SetPointsLogsChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPointsThanksChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPointsManagerRole(ctx context.Context, guildID int64, roleID *int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPointsCurator(ctx context.Context, guildID int64, userID *int64) error {
	args := m.Called(ctx, guildID, userID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPointsWelcomeMessage(ctx context.Context, guildID int64, message *string) error {
	args := m.Called(ctx, guildID, message)
	return args.Error(0)
}

func (m *MockGuildConfigService) EnablePoints(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*entities.GuildConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGuildConfigService) DisablePoints(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPresensiChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetPresensiRole(ctx context.Context, guildID int64, roleID *int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetSholatChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetSholatReminderRole(ctx context.Context, guildID int64, roleID *int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetSholatCity(ctx context.Context, guildID int64, city *string) error {
	args := m.Called(ctx, guildID, city)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetAchievementsChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) ToggleAchievements(ctx context.Context, guildID int64) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}
