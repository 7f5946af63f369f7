package sholat

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"pengurus/bot/common"
	"pengurus/domain/entities"
	"pengurus/domain/interfaces"
)

// Feature handles prayer reminder (sholat) configuration
type Feature struct {
	configs interfaces.GuildConfigService
}

// NewFeature creates a new sholat feature instance
func NewFeature(configs interfaces.GuildConfigService) *Feature {
	return &Feature{
		configs: configs,
	}
}

// HandleSetupCommand shows the prayer reminder configuration panel
func (f *Feature) HandleSetupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "invalid guild id on setup interaction")
	}

	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to render sholat panel")
	}

	return common.ShowPanel(s, i, panel)
}

// RenderPanel builds the panel from the guild's current configuration.
func (f *Feature) RenderPanel(ctx context.Context, guildID int64) (*common.Panel, error) {
	cfg, err := f.configs.GetOrCreateConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}

	currentCity := ""
	if cfg.Sholat.HasCity() {
		currentCity = *cfg.Sholat.City
	}

	return &common.Panel{
		Embed:      createPanelEmbed(cfg),
		Components: createPanelComponents(currentCity),
	}, nil
}

func createPanelEmbed(cfg *entities.GuildConfig) *discordgo.MessageEmbed {
	channel := "_belum diatur_"
	if cfg.Sholat.HasChannel() {
		channel = common.ChannelMention(*cfg.Sholat.ChannelID)
	}
	role := "_belum diatur_"
	if cfg.Sholat.HasReminderRole() {
		role = common.RoleMention(*cfg.Sholat.ReminderRoleID)
	}
	city := "_belum diatur_"
	if cfg.Sholat.HasCity() {
		city = *cfg.Sholat.City
	}

	return &discordgo.MessageEmbed{
		Title:       "🕌 Pengaturan Pengingat Sholat",
		Color:       common.ColorPrimary,
		Description: "Atur channel pengingat, role yang di-mention, dan kota untuk jadwal sholat.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Channel",
				Value:  channel,
				Inline: true,
			},
			{
				Name:   "Role",
				Value:  role,
				Inline: true,
			},
			{
				Name:   "Kota",
				Value:  city,
				Inline: true,
			},
		},
	}
}
