package presensi

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"pengurus/bot/common"
	"pengurus/domain/entities"
	"pengurus/domain/interfaces"
)

// Custom IDs for the attendance configuration panel.
const (
	CustomIDChannelSelect = "presensi_channel"
	CustomIDRoleSelect    = "presensi_role"
)

// Feature handles attendance (presensi) configuration
type Feature struct {
	configs interfaces.GuildConfigService
}

// NewFeature creates a new presensi feature instance
func NewFeature(configs interfaces.GuildConfigService) *Feature {
	return &Feature{
		configs: configs,
	}
}

// HandleSetupCommand shows the attendance configuration panel
func (f *Feature) HandleSetupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "invalid guild id on setup interaction")
	}

	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to render presensi panel")
	}

	return common.ShowPanel(s, i, panel)
}

// RenderPanel builds the panel from the guild's current configuration.
func (f *Feature) RenderPanel(ctx context.Context, guildID int64) (*common.Panel, error) {
	cfg, err := f.configs.GetOrCreateConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}

	return &common.Panel{
		Embed:      createPanelEmbed(cfg),
		Components: createPanelComponents(),
	}, nil
}

func createPanelEmbed(cfg *entities.GuildConfig) *discordgo.MessageEmbed {
	channel := "_belum diatur_"
	if cfg.Presensi.HasChannel() {
		channel = common.ChannelMention(*cfg.Presensi.ChannelID)
	}
	role := "_belum diatur_"
	if cfg.Presensi.HasRole() {
		role = common.RoleMention(*cfg.Presensi.RoleID)
	}

	return &discordgo.MessageEmbed{
		Title:       "📋 Pengaturan Presensi",
		Color:       common.ColorPrimary,
		Description: "Atur channel presensi harian dan role yang diberikan kepada anggota yang hadir.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Channel Presensi",
				Value:  channel,
				Inline: true,
			},
			{
				Name:   "Role Presensi",
				Value:  role,
				Inline: true,
			},
		},
	}
}

func createPanelComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:     discordgo.ChannelSelectMenu,
					CustomID:     CustomIDChannelSelect,
					Placeholder:  "Pilih channel presensi",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.RoleSelectMenu,
					CustomID:    CustomIDRoleSelect,
					Placeholder: "Pilih role presensi",
				},
			},
		},
	}
}
