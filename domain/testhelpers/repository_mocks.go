package testhelpers

import (
	"context"

	"pengurus/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockGuildConfigRepository is a mock implementation of GuildConfigRepository
type MockGuildConfigRepository struct {
	mock.Mock
}

func (m *MockGuildConfigRepository) GetOrCreateGuildConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(*entities.GuildConfig), args.Error(1)
}

func (m *MockGuildConfigRepository) UpdatePointsConfig(ctx context.Context, guildID int64, points *entities.PointsConfig) error {
	args := m.Called(ctx, guildID, points)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) UpdatePresensiConfig(ctx context.Context, guildID int64, presensi *entities.PresensiConfig) error {
	args := m.Called(ctx, guildID, presensi)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) UpdateSholatConfig(ctx context.Context, guildID int64, sholat *entities.SholatConfig) error {
	args := m.Called(ctx, guildID, sholat)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) UpdateAchievementsConfig(ctx context.Context, guildID int64, achievements *entities.AchievementsConfig) error {
	args := m.Called(ctx, guildID, achievements)
	return args.Error(0)
}
