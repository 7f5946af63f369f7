package services

import (
	"context"
	"errors"
	"fmt"

	"pengurus/domain/entities"
	"pengurus/domain/interfaces"
)

// ErrPointsNotReady is returned by EnablePoints when the logs or thanks
// channel has not been configured yet.
var ErrPointsNotReady = errors.New("points module requires both a logs channel and a thanks channel")

// guildConfigService implements the GuildConfigService interface
type guildConfigService struct {
	guildConfigRepo interfaces.GuildConfigRepository
}

// NewGuildConfigService creates a new guild configuration service
func NewGuildConfigService(guildConfigRepo interfaces.GuildConfigRepository) interfaces.GuildConfigService {
	return &guildConfigService{
		guildConfigRepo: guildConfigRepo,
	}
}

// GetOrCreateConfig retrieves the guild configuration or creates a default one
func (s *guildConfigService) GetOrCreateConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild config: %w", err)
	}
	return config, nil
}

// SetPointsLogsChannel updates the points log channel for a guild
func (s *guildConfigService) SetPointsLogsChannel(ctx context.Context, guildID int64, channelID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.LogsChannelID = channelID

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// SetPointsThanksChannel updates the points thanks channel for a guild
func (s *guildConfigService) SetPointsThanksChannel(ctx context.Context, guildID int64, channelID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.ThanksChannelID = channelID

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// SetPointsManagerRole updates the manager role for a guild
func (s *guildConfigService) SetPointsManagerRole(ctx context.Context, guildID int64, roleID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.ManagerRoleID = roleID

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// SetPointsCurator updates the designated curator user for a guild
func (s *guildConfigService) SetPointsCurator(ctx context.Context, guildID int64, userID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.CuratorUserID = userID

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// SetPointsWelcomeMessage updates the welcome message for a guild
func (s *guildConfigService) SetPointsWelcomeMessage(ctx context.Context, guildID int64, message *string) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.WelcomeMessage = message

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// EnablePoints switches the points module on, refusing if prerequisites are missing
func (s *guildConfigService) EnablePoints(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	if !config.Points.ReadyToEnable() {
		return nil, ErrPointsNotReady
	}

	config.Points.Enabled = true

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return nil, fmt.Errorf("failed to update points config: %w", err)
	}
	return config, nil
}

// DisablePoints switches the points module off
func (s *guildConfigService) DisablePoints(ctx context.Context, guildID int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Points.Enabled = false

	if err := s.guildConfigRepo.UpdatePointsConfig(ctx, guildID, &config.Points); err != nil {
		return fmt.Errorf("failed to update points config: %w", err)
	}
	return nil
}

// SetPresensiChannel updates the attendance channel for a guild
func (s *guildConfigService) SetPresensiChannel(ctx context.Context, guildID int64, channelID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Presensi.ChannelID = channelID

	if err := s.guildConfigRepo.UpdatePresensiConfig(ctx, guildID, &config.Presensi); err != nil {
		return fmt.Errorf("failed to update presensi config: %w", err)
	}
	return nil
}

// SetPresensiRole updates the attendance role for a guild
func (s *guildConfigService) SetPresensiRole(ctx context.Context, guildID int64, roleID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Presensi.RoleID = roleID

	if err := s.guildConfigRepo.UpdatePresensiConfig(ctx, guildID, &config.Presensi); err != nil {
		return fmt.Errorf("failed to update presensi config: %w", err)
	}
	return nil
}

// SetSholatChannel updates the prayer announcement channel for a guild
func (s *guildConfigService) SetSholatChannel(ctx context.Context, guildID int64, channelID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Sholat.ChannelID = channelID

	if err := s.guildConfigRepo.UpdateSholatConfig(ctx, guildID, &config.Sholat); err != nil {
		return fmt.Errorf("failed to update sholat config: %w", err)
	}
	return nil
}

// SetSholatReminderRole updates the prayer reminder role for a guild
func (s *guildConfigService) SetSholatReminderRole(ctx context.Context, guildID int64, roleID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Sholat.ReminderRoleID = roleID

	if err := s.guildConfigRepo.UpdateSholatConfig(ctx, guildID, &config.Sholat); err != nil {
		return fmt.Errorf("failed to update sholat config: %w", err)
	}
	return nil
}

// SetSholatCity updates the city used for the prayer schedule
func (s *guildConfigService) SetSholatCity(ctx context.Context, guildID int64, city *string) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Sholat.City = city

	if err := s.guildConfigRepo.UpdateSholatConfig(ctx, guildID, &config.Sholat); err != nil {
		return fmt.Errorf("failed to update sholat config: %w", err)
	}
	return nil
}

// SetAchievementsChannel updates the achievement announcement channel for a guild
func (s *guildConfigService) SetAchievementsChannel(ctx context.Context, guildID int64, channelID *int64) error {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Achievements.AnnounceChannelID = channelID

	if err := s.guildConfigRepo.UpdateAchievementsConfig(ctx, guildID, &config.Achievements); err != nil {
		return fmt.Errorf("failed to update achievements config: %w", err)
	}
	return nil
}

// ToggleAchievements flips the achievements module on or off
func (s *guildConfigService) ToggleAchievements(ctx context.Context, guildID int64) (bool, error) {
	config, err := s.guildConfigRepo.GetOrCreateGuildConfig(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to get guild config: %w", err)
	}

	config.Achievements.Enabled = !config.Achievements.Enabled

	if err := s.guildConfigRepo.UpdateAchievementsConfig(ctx, guildID, &config.Achievements); err != nil {
		return false, fmt.Errorf("failed to update achievements config: %w", err)
	}
	return config.Achievements.Enabled, nil
}
