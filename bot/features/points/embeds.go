package points

import (
	"pengurus/bot/common"
	"pengurus/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const notSet = "_belum diatur_"

// CreatePanelEmbed creates the points configuration panel embed reflecting
// the current guild configuration.
func CreatePanelEmbed(cfg *entities.GuildConfig) *discordgo.MessageEmbed {
	status := "🔴 Nonaktif"
	color := common.ColorWarning
	if cfg.Points.Enabled {
		status = "🟢 Aktif"
		color = common.ColorSuccess
	}

	logsChannel := notSet
	if cfg.Points.HasLogsChannel() {
		logsChannel = common.ChannelMention(*cfg.Points.LogsChannelID)
	}
	thanksChannel := notSet
	if cfg.Points.HasThanksChannel() {
		thanksChannel = common.ChannelMention(*cfg.Points.ThanksChannelID)
	}
	managerRole := notSet
	if cfg.Points.HasManagerRole() {
		managerRole = common.RoleMention(*cfg.Points.ManagerRoleID)
	}
	curator := notSet
	if cfg.Points.HasCurator() {
		curator = common.UserMention(*cfg.Points.CuratorUserID)
	}
	welcome := notSet
	if cfg.Points.HasWelcomeMessage() {
		welcome = *cfg.Points.WelcomeMessage
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚙️ Pengaturan Poin",
		Color:       color,
		Description: "Atur modul poin untuk server ini. Channel log dan channel terima kasih wajib diisi sebelum modul bisa diaktifkan.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Status",
				Value:  status,
				Inline: true,
			},
			{
				Name:   "Channel Log",
				Value:  logsChannel,
				Inline: true,
			},
			{
				Name:   "Channel Terima Kasih",
				Value:  thanksChannel,
				Inline: true,
			},
			{
				Name:   "Role Pengelola",
				Value:  managerRole,
				Inline: true,
			},
			{
				Name:   "Kurator",
				Value:  curator,
				Inline: true,
			},
			{
				Name:   "Pesan Sambutan",
				Value:  welcome,
				Inline: false,
			},
		},
	}

	return embed
}

// CreateWelcomeEmbed creates the public announcement posted to the thanks
// channel when the points module is enabled.
func CreateWelcomeEmbed(cfg *entities.GuildConfig) *discordgo.MessageEmbed {
	description := "Sistem poin komunitas sudah aktif! Berikan apresiasi kepada anggota lain dan kumpulkan poin."
	if cfg.Points.HasWelcomeMessage() {
		description = *cfg.Points.WelcomeMessage
	}

	return &discordgo.MessageEmbed{
		Title:       "⭐ Modul Poin Aktif",
		Color:       common.ColorPrimary,
		Description: description,
	}
}

// CreateThanksInfoEmbed explains how the points system works; shown when a
// member presses the info button on the welcome message.
func CreateThanksInfoEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Cara Kerja Poin",
		Color:       common.ColorInfo,
		Description: "Ucapkan terima kasih di channel yang sudah ditentukan untuk memberi poin kepada anggota lain. Kurator dapat memberikan poin bonus, dan semua perubahan poin dicatat di channel log.",
	}
}
