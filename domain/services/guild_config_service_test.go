package services

import (
	"context"
	"errors"
	"testing"

	"pengurus/domain/entities"
	"pengurus/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testGuildID = int64(555555555)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestGuildConfigService_SetPointsLogsChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		channelID   *int64
		setupMock   func(*testhelpers.MockGuildConfigRepository)
		wantErr     bool
		errContains string
	}{
		{
			name:      "sets channel preserving sibling fields",
			channelID: int64Ptr(111),
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				config := &entities.GuildConfig{
					GuildID: testGuildID,
					Points: entities.PointsConfig{
						ThanksChannelID: int64Ptr(222),
						ManagerRoleID:   int64Ptr(333),
					},
				}
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
				mockRepo.On("UpdatePointsConfig", context.Background(), testGuildID, mock.MatchedBy(func(p *entities.PointsConfig) bool {
					return p.LogsChannelID != nil && *p.LogsChannelID == 111 &&
						p.ThanksChannelID != nil && *p.ThanksChannelID == 222 &&
						p.ManagerRoleID != nil && *p.ManagerRoleID == 333
				})).Return(nil)
			},
		},
		{
			name:      "nil clears the channel",
			channelID: nil,
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				config := &entities.GuildConfig{
					GuildID: testGuildID,
					Points:  entities.PointsConfig{LogsChannelID: int64Ptr(111)},
				}
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
				mockRepo.On("UpdatePointsConfig", context.Background(), testGuildID, mock.MatchedBy(func(p *entities.PointsConfig) bool {
					return p.LogsChannelID == nil
				})).Return(nil)
			},
		},
		{
			name:      "repository read error",
			channelID: int64Ptr(111),
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return((*entities.GuildConfig)(nil), errors.New("connection refused"))
			},
			wantErr:     true,
			errContains: "failed to get guild config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := new(testhelpers.MockGuildConfigRepository)
			tt.setupMock(mockRepo)

			service := NewGuildConfigService(mockRepo)
			err := service.SetPointsLogsChannel(context.Background(), testGuildID, tt.channelID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGuildConfigService_SetPresensiRole_DoesNotTouchOtherSections(t *testing.T) {
	t.Parallel()

	mockRepo := new(testhelpers.MockGuildConfigRepository)
	config := &entities.GuildConfig{
		GuildID: testGuildID,
		Points:  entities.PointsConfig{Enabled: true, LogsChannelID: int64Ptr(111)},
	}
	mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
	// Only the presensi section is persisted; the points section is never written.
	mockRepo.On("UpdatePresensiConfig", context.Background(), testGuildID, mock.MatchedBy(func(p *entities.PresensiConfig) bool {
		return p.RoleID != nil && *p.RoleID == 444
	})).Return(nil)

	service := NewGuildConfigService(mockRepo)
	err := service.SetPresensiRole(context.Background(), testGuildID, int64Ptr(444))

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "UpdatePointsConfig", mock.Anything, mock.Anything, mock.Anything)
}

func TestGuildConfigService_EnablePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*testhelpers.MockGuildConfigRepository)
		wantErr   error
	}{
		{
			name: "both channels configured",
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				config := &entities.GuildConfig{
					GuildID: testGuildID,
					Points: entities.PointsConfig{
						LogsChannelID:   int64Ptr(111),
						ThanksChannelID: int64Ptr(222),
					},
				}
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
				mockRepo.On("UpdatePointsConfig", context.Background(), testGuildID, mock.MatchedBy(func(p *entities.PointsConfig) bool {
					return p.Enabled
				})).Return(nil)
			},
		},
		{
			name: "missing thanks channel is refused without mutation",
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				config := &entities.GuildConfig{
					GuildID: testGuildID,
					Points:  entities.PointsConfig{LogsChannelID: int64Ptr(111)},
				}
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
			},
			wantErr: ErrPointsNotReady,
		},
		{
			name: "missing logs channel is refused without mutation",
			setupMock: func(mockRepo *testhelpers.MockGuildConfigRepository) {
				config := &entities.GuildConfig{
					GuildID: testGuildID,
					Points:  entities.PointsConfig{ThanksChannelID: int64Ptr(222)},
				}
				mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
			},
			wantErr: ErrPointsNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := new(testhelpers.MockGuildConfigRepository)
			tt.setupMock(mockRepo)

			service := NewGuildConfigService(mockRepo)
			config, err := service.EnablePoints(context.Background(), testGuildID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, config)
				mockRepo.AssertNotCalled(t, "UpdatePointsConfig", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				require.NotNil(t, config)
				assert.True(t, config.Points.Enabled)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGuildConfigService_ToggleAchievements(t *testing.T) {
	t.Parallel()

	mockRepo := new(testhelpers.MockGuildConfigRepository)
	config := &entities.GuildConfig{GuildID: testGuildID}
	mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
	mockRepo.On("UpdateAchievementsConfig", context.Background(), testGuildID, mock.MatchedBy(func(a *entities.AchievementsConfig) bool {
		return a.Enabled
	})).Return(nil)

	service := NewGuildConfigService(mockRepo)
	enabled, err := service.ToggleAchievements(context.Background(), testGuildID)

	require.NoError(t, err)
	assert.True(t, enabled)
	mockRepo.AssertExpectations(t)
}

func TestGuildConfigService_SetSholatCity(t *testing.T) {
	t.Parallel()

	mockRepo := new(testhelpers.MockGuildConfigRepository)
	config := &entities.GuildConfig{
		GuildID: testGuildID,
		Sholat:  entities.SholatConfig{ChannelID: int64Ptr(777)},
	}
	mockRepo.On("GetOrCreateGuildConfig", context.Background(), testGuildID).Return(config, nil)
	mockRepo.On("UpdateSholatConfig", context.Background(), testGuildID, mock.MatchedBy(func(s *entities.SholatConfig) bool {
		return s.City != nil && *s.City == "Yogyakarta" &&
			s.ChannelID != nil && *s.ChannelID == 777
	})).Return(nil)

	service := NewGuildConfigService(mockRepo)
	err := service.SetSholatCity(context.Background(), testGuildID, strPtr("Yogyakarta"))

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
