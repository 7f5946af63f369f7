package repository

import (
	"context"
	"fmt"

	"pengurus/database"
	"pengurus/domain/entities"
	"pengurus/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

const guildConfigColumns = `guild_id,
	points_enabled, points_logs_channel_id, points_thanks_channel_id,
	points_manager_role_id, points_curator_user_id, points_welcome_message,
	presensi_channel_id, presensi_role_id,
	sholat_channel_id, sholat_reminder_role_id, sholat_city,
	achievements_enabled, achievements_channel_id`

// GuildConfigRepository implements the GuildConfigRepository interface on Postgres
type GuildConfigRepository struct {
	q Queryable
}

// NewGuildConfigRepository creates a new guild configuration repository
func NewGuildConfigRepository(db *database.DB) interfaces.GuildConfigRepository {
	return &GuildConfigRepository{q: db.Pool}
}

// NewGuildConfigRepositoryWithTx creates a repository bound to a transaction
func NewGuildConfigRepositoryWithTx(tx Queryable) interfaces.GuildConfigRepository {
	return &GuildConfigRepository{q: tx}
}

func scanGuildConfig(row pgx.Row) (*entities.GuildConfig, error) {
	var config entities.GuildConfig
	err := row.Scan(
		&config.GuildID,
		&config.Points.Enabled,
		&config.Points.LogsChannelID,
		&config.Points.ThanksChannelID,
		&config.Points.ManagerRoleID,
		&config.Points.CuratorUserID,
		&config.Points.WelcomeMessage,
		&config.Presensi.ChannelID,
		&config.Presensi.RoleID,
		&config.Sholat.ChannelID,
		&config.Sholat.ReminderRoleID,
		&config.Sholat.City,
		&config.Achievements.Enabled,
		&config.Achievements.AnnounceChannelID,
	)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetOrCreateGuildConfig retrieves the configuration row for a guild, creating
// a fully unconfigured one on first access.
func (r *GuildConfigRepository) GetOrCreateGuildConfig(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM guild_configs
		WHERE guild_id = $1
	`, guildConfigColumns)

	config, err := scanGuildConfig(r.q.QueryRow(ctx, query, guildID))
	if err == nil {
		return config, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get guild config for guild %d: %w", guildID, err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO guild_configs (guild_id)
		VALUES ($1)
		ON CONFLICT (guild_id) DO UPDATE SET updated_at = NOW()
		RETURNING %s
	`, guildConfigColumns)

	config, err = scanGuildConfig(r.q.QueryRow(ctx, insertQuery, guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to create guild config for guild %d: %w", guildID, err)
	}
	return config, nil
}

// UpdatePointsConfig persists the points section, leaving every other section untouched
func (r *GuildConfigRepository) UpdatePointsConfig(ctx context.Context, guildID int64, points *entities.PointsConfig) error {
	query := `
		UPDATE guild_configs
		SET points_enabled = $2,
		    points_logs_channel_id = $3,
		    points_thanks_channel_id = $4,
		    points_manager_role_id = $5,
		    points_curator_user_id = $6,
		    points_welcome_message = $7,
		    updated_at = NOW()
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		guildID,
		points.Enabled,
		points.LogsChannelID,
		points.ThanksChannelID,
		points.ManagerRoleID,
		points.CuratorUserID,
		points.WelcomeMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to update points config for guild %d: %w", guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config for guild %d not found", guildID)
	}
	return nil
}

// UpdatePresensiConfig persists the presensi section, leaving every other section untouched
func (r *GuildConfigRepository) UpdatePresensiConfig(ctx context.Context, guildID int64, presensi *entities.PresensiConfig) error {
	query := `
		UPDATE guild_configs
		SET presensi_channel_id = $2,
		    presensi_role_id = $3,
		    updated_at = NOW()
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query, guildID, presensi.ChannelID, presensi.RoleID)
	if err != nil {
		return fmt.Errorf("failed to update presensi config for guild %d: %w", guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config for guild %d not found", guildID)
	}
	return nil
}

// UpdateSholatConfig persists the sholat section, leaving every other section untouched
func (r *GuildConfigRepository) UpdateSholatConfig(ctx context.Context, guildID int64, sholat *entities.SholatConfig) error {
	query := `
		UPDATE guild_configs
		SET sholat_channel_id = $2,
		    sholat_reminder_role_id = $3,
		    sholat_city = $4,
		    updated_at = NOW()
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query, guildID, sholat.ChannelID, sholat.ReminderRoleID, sholat.City)
	if err != nil {
		return fmt.Errorf("failed to update sholat config for guild %d: %w", guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config for guild %d not found", guildID)
	}
	return nil
}

// UpdateAchievementsConfig persists the achievements section, leaving every other section untouched
func (r *GuildConfigRepository) UpdateAchievementsConfig(ctx context.Context, guildID int64, achievements *entities.AchievementsConfig) error {
	query := `
		UPDATE guild_configs
		SET achievements_enabled = $2,
		    achievements_channel_id = $3,
		    updated_at = NOW()
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query, guildID, achievements.Enabled, achievements.AnnounceChannelID)
	if err != nil {
		return fmt.Errorf("failed to update achievements config for guild %d: %w", guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild config for guild %d not found", guildID)
	}
	return nil
}
