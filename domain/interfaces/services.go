package interfaces

import (
	"context"

	"pengurus/domain/entities"
)

// GuildConfigService defines the interface for guild configuration operations.
// Every setter follows the same merge-update contract: read the current
// configuration, change exactly one field, persist only that field's section.
type GuildConfigService interface {
	// GetOrCreateConfig retrieves the guild configuration or creates a default one
	GetOrCreateConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error)

	// SetPointsLogsChannel updates the points log channel (nil disables it)
	SetPointsLogsChannel(ctx context.Context, guildID int64, channelID *int64) error

	// SetPointsThanksChannel updates the points thanks channel (nil disables it)
	SetPointsThanksChannel(ctx context.Context, guildID int64, channelID *int64) error

	// SetPointsManagerRole updates the role allowed to manage setup (nil disables it)
	SetPointsManagerRole(ctx context.Context, guildID int64, roleID *int64) error

	// SetPointsCurator updates the designated curator user (nil disables it)
	SetPointsCurator(ctx context.Context, guildID int64, userID *int64) error

	// SetPointsWelcomeMessage updates the welcome text posted to the thanks channel
	SetPointsWelcomeMessage(ctx context.Context, guildID int64, message *string) error

	// EnablePoints switches the points module on. Returns ErrPointsNotReady if
	// the logs or thanks channel is missing; the configuration is not touched
	// in that case.
	EnablePoints(ctx context.Context, guildID int64) (*entities.GuildConfig, error)

	// DisablePoints switches the points module off
	DisablePoints(ctx context.Context, guildID int64) error

	// SetPresensiChannel updates the attendance channel (nil disables it)
	SetPresensiChannel(ctx context.Context, guildID int64, channelID *int64) error

	// SetPresensiRole updates the attendance role (nil disables it)
	SetPresensiRole(ctx context.Context, guildID int64, roleID *int64) error

	// SetSholatChannel updates the prayer announcement channel (nil disables it)
	SetSholatChannel(ctx context.Context, guildID int64, channelID *int64) error

	// SetSholatReminderRole updates the prayer reminder role (nil disables it)
	SetSholatReminderRole(ctx context.Context, guildID int64, roleID *int64) error

	// SetSholatCity updates the city used for the prayer schedule (nil clears it)
	SetSholatCity(ctx context.Context, guildID int64, city *string) error

	// SetAchievementsChannel updates the achievement announcement channel (nil disables it)
	SetAchievementsChannel(ctx context.Context, guildID int64, channelID *int64) error

	// ToggleAchievements flips the achievements module on or off and returns
	// the new state
	ToggleAchievements(ctx context.Context, guildID int64) (bool, error)
}
