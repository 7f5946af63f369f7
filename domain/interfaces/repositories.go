package interfaces

import (
	"context"

	"pengurus/domain/entities"
)

// GuildConfigRepository defines the interface for guild configuration data access.
// Updates are section-granular: each UpdateX call touches only its own section's
// columns, so near-simultaneous writes to different sections never clobber each
// other (last-writer-wins applies within a single section only).
type GuildConfigRepository interface {
	// GetOrCreateGuildConfig retrieves the guild configuration or creates a
	// default (fully unconfigured) one if none exists
	GetOrCreateGuildConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error)

	// UpdatePointsConfig persists the points section for a guild
	UpdatePointsConfig(ctx context.Context, guildID int64, points *entities.PointsConfig) error

	// UpdatePresensiConfig persists the presensi section for a guild
	UpdatePresensiConfig(ctx context.Context, guildID int64, presensi *entities.PresensiConfig) error

	// UpdateSholatConfig persists the sholat section for a guild
	UpdateSholatConfig(ctx context.Context, guildID int64, sholat *entities.SholatConfig) error

	// UpdateAchievementsConfig persists the achievements section for a guild
	UpdateAchievementsConfig(ctx context.Context, guildID int64, achievements *entities.AchievementsConfig) error
}
