package achievements

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"pengurus/bot/common"
	"pengurus/domain/entities"
	"pengurus/domain/interfaces"
)

// Custom IDs for the achievements configuration panel.
const (
	CustomIDChannelSelect = "achievements_channel"
	CustomIDToggleButton  = "achievements_toggle"
)

// Feature handles achievement announcement configuration
type Feature struct {
	configs interfaces.GuildConfigService
}

// NewFeature creates a new achievements feature instance
func NewFeature(configs interfaces.GuildConfigService) *Feature {
	return &Feature{
		configs: configs,
	}
}

// HandleSetupCommand shows the achievements configuration panel
func (f *Feature) HandleSetupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "invalid guild id on setup interaction")
	}

	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to render achievements panel")
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
		Components: createPanelComponents(cfg),
	}, nil
}

func createPanelEmbed(cfg *entities.GuildConfig) *discordgo.MessageEmbed {
	status := "🔴 Nonaktif"
	color := common.ColorWarning
	if cfg.Achievements.Enabled {
		status = "🟢 Aktif"
		color = common.ColorSuccess
	}
	channel := "_belum diatur_"
	if cfg.Achievements.HasAnnounceChannel() {
		channel = common.ChannelMention(*cfg.Achievements.AnnounceChannelID)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Pengaturan Pencapaian",
		Color:       color,
		Description: "Atur pengumuman pencapaian anggota.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Status",
				Value:  status,
				Inline: true,
			},
			{
				Name:   "Channel Pengumuman",
				Value:  channel,
				Inline: true,
			},
		},
	}
}

func createPanelComponents(cfg *entities.GuildConfig) []discordgo.MessageComponent {
	label := "Aktifkan"
	style := discordgo.SuccessButton
	if cfg.Achievements.Enabled {
		label = "Nonaktifkan"
		style = discordgo.DangerButton
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:     discordgo.ChannelSelectMenu,
					CustomID:     CustomIDChannelSelect,
					Placeholder:  "Pilih channel pengumuman",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    style,
					CustomID: CustomIDToggleButton,
				},
			},
		},
	}
}
