package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"pengurus/bot/common"
)

const setupCooldown = 5 * time.Second

// registerCommandHandlers wires every slash command into the dispatcher
func (b *Bot) registerCommandHandlers() {
	b.dispatcher.Register(&Command{
		Definition: &discordgo.ApplicationCommand{
			Name:        "ping",
			Description: "Cek apakah bot berjalan",
		},
		Handler: b.handlePing,
	})

	b.dispatcher.Register(&Command{
		Definition: &discordgo.ApplicationCommand{
			Name:        "help",
			Description: "Daftar perintah yang tersedia",
		},
		Handler: b.handleHelp,
	})

	b.dispatcher.Register(&Command{
		Definition: &discordgo.ApplicationCommand{
			Name:        "setup",
			Description: "Buka panel pengaturan modul",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "points",
					Description: "Pengaturan modul poin",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "presensi",
					Description: "Pengaturan presensi harian",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sholat",
					Description: "Pengaturan pengingat sholat",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "achievements",
					Description: "Pengaturan pengumuman pencapaian",
				},
			},
		},
		Cooldown: setupCooldown,
		Handler:  b.handleSetup,
	})
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range b.dispatcher.Definitions() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	latency := s.HeartbeatLatency()
	return common.RespondEphemeral(s, i, fmt.Sprintf("🏓 Pong! Latensi gateway: %dms", latency.Milliseconds()))
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	embed := &discordgo.MessageEmbed{
		Title: "Bantuan",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "/ping",
				Value: "Cek apakah bot berjalan",
			},
			{
				Name:  "/setup points",
				Value: "Atur channel log, channel terima kasih, role pengelola, kurator, dan pesan sambutan",
			},
			{
				Name:  "/setup presensi",
				Value: "Atur channel dan role presensi harian",
			},
			{
				Name:  "/setup sholat",
				Value: "Atur channel, role, dan kota pengingat sholat",
			},
			{
				Name:  "/setup achievements",
				Value: "Atur pengumuman pencapaian anggota",
			},
		},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// handleSetup gates the configuration panels behind server administrator
// permissions or the configured manager role, then routes to the requested
// feature's panel.
func (b *Bot) handleSetup(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewUserError("Perintah ini hanya bisa dipakai di server", "setup invoked outside a guild")
	}

	cfg, err := b.configs.GetOrCreateConfig(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to load guild config for setup")
	}

	allowed := common.IsUserAdmin(s, i.GuildID, common.InteractionUserID(i))
	if !allowed && cfg.Points.HasManagerRole() {
		allowed = common.MemberHasRole(i.Member, *cfg.Points.ManagerRoleID)
	}
	if !allowed {
		return common.NewUserError(
			"Kamu butuh izin administrator atau role pengelola untuk memakai perintah ini",
			"setup denied by permission gate",
		)
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return common.NewUserError("Pilih modul yang ingin diatur", "setup invoked without subcommand")
	}

	switch options[0].Name {
	case "points":
		return b.points.HandleSetupCommand(s, i)
	case "presensi":
		return b.presensi.HandleSetupCommand(s, i)
	case "sholat":
		return b.sholat.HandleSetupCommand(s, i)
	case "achievements":
		return b.achievements.HandleSetupCommand(s, i)
	default:
		return common.NewUserError("Modul tidak dikenal", fmt.Sprintf("unknown setup subcommand: %s", options[0].Name))
	}
}
