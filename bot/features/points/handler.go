package points

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"pengurus/bot/common"
	"pengurus/domain/entities"
	"pengurus/domain/services"
)

// HandleLogsChannelSelect records the channel that receives points audit logs
func (f *Feature) HandleLogsChannelSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := common.SelectedID(s, i, "Pilih satu channel terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPointsLogsChannel(context.Background(), guildID, &channelID); err != nil {
		log.Errorf("Failed to set points logs channel: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Channel log diatur ke %s", common.ChannelMention(channelID)))
}

// HandleThanksChannelSelect records the channel where members exchange thanks
func (f *Feature) HandleThanksChannelSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := common.SelectedID(s, i, "Pilih satu channel terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPointsThanksChannel(context.Background(), guildID, &channelID); err != nil {
		log.Errorf("Failed to set points thanks channel: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Channel terima kasih diatur ke %s", common.ChannelMention(channelID)))
}

// HandleManagerRoleSelect records the role allowed to manage point setup
func (f *Feature) HandleManagerRoleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	roleID, ok := common.SelectedID(s, i, "Pilih satu role terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPointsManagerRole(context.Background(), guildID, &roleID); err != nil {
		log.Errorf("Failed to set points manager role: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Role pengelola diatur ke %s", common.RoleMention(roleID)))
}

// HandleCuratorUserSelect records the member designated as point curator
func (f *Feature) HandleCuratorUserSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, ok := common.SelectedID(s, i, "Pilih satu anggota terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPointsCurator(context.Background(), guildID, &userID); err != nil {
		log.Errorf("Failed to set points curator: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Kurator diatur ke %s", common.UserMention(userID)))
}

// HandleEnableButton switches the points module on. Enabling is refused while
// either required channel is missing, and on success a welcome message is
// posted to the thanks channel. That post is best effort: a delivery failure
// softens the confirmation but never rolls the module back off.
func (f *Feature) HandleEnableButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	cfg, err := f.configs.EnablePoints(context.Background(), guildID)
	if errors.Is(err, services.ErrPointsNotReady) {
		common.RespondWithError(s, i, "Atur channel log dan channel terima kasih dulu sebelum mengaktifkan poin")
		return
	}
	if err != nil {
		log.Errorf("Failed to enable points: %v", err)
		common.RespondWithError(s, i, "Gagal mengaktifkan modul poin")
		return
	}

	confirmation := "✅ Modul poin diaktifkan"
	if sendErr := f.postWelcomeMessage(s, cfg); sendErr != nil {
		log.WithFields(log.Fields{
			"guild_id": guildID,
			"error":    sendErr.Error(),
		}).Warn("Points enabled but welcome message could not be posted")
		confirmation = "⚠️ Modul poin diaktifkan, tetapi pesan sambutan gagal dikirim"
	}

	f.refresh(s, i, guildID, confirmation)
}

// HandleDisableButton switches the points module off
func (f *Feature) HandleDisableButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.DisablePoints(context.Background(), guildID); err != nil {
		log.Errorf("Failed to disable points: %v", err)
		common.RespondWithError(s, i, "Gagal menonaktifkan modul poin")
		return
	}

	f.refresh(s, i, guildID, "✅ Modul poin dinonaktifkan")
}

// HandleWelcomeEditButton opens the welcome message modal, prefilled with the
// current text so edits start from what members already see.
func (f *Feature) HandleWelcomeEditButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	cfg, err := f.configs.GetOrCreateConfig(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to load guild config for welcome modal: %v", err)
		common.RespondWithError(s, i, "Gagal memuat pengaturan")
		return
	}

	current := ""
	if cfg.Points.HasWelcomeMessage() {
		current = *cfg.Points.WelcomeMessage
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: CreateWelcomeModal(current),
	})
	if err != nil {
		log.Errorf("Failed to show welcome modal: %v", err)
	}
}

// HandleWelcomeModalSubmit persists the submitted welcome text and refreshes
// the panel the modal was opened from.
func (f *Feature) HandleWelcomeModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := common.ExtractModalInput(i, "message")
	if strings.TrimSpace(message) == "" {
		common.RespondWithError(s, i, "Pesan sambutan tidak boleh kosong")
		return
	}

	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPointsWelcomeMessage(context.Background(), guildID, &message); err != nil {
		log.Errorf("Failed to set welcome message: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pesan sambutan")
		return
	}

	// Modal submissions cannot swap the panel through the interaction
	// response, so edit the originating message directly.
	if panel, err := f.RenderPanel(context.Background(), guildID); err != nil {
		log.Errorf("Failed to re-render points panel: %v", err)
	} else if i.Message != nil {
		edit := discordgo.NewMessageEdit(i.Message.ChannelID, i.Message.ID)
		edit.Embeds = &[]*discordgo.MessageEmbed{panel.Embed}
		edit.Components = &panel.Components
		if _, editErr := s.ChannelMessageEditComplex(edit); editErr != nil {
			log.Errorf("Failed to edit points panel after welcome update: %v", editErr)
		}
	}

	if err := common.RespondEphemeral(s, i, "✅ Pesan sambutan disimpan"); err != nil {
		log.Errorf("Error confirming welcome message update: %v", err)
	}
}

// HandleThanksButton serves the buttons attached to posted welcome messages.
// Every such button shares the points_thanks_ prefix so old messages keep
// working across restarts.
func (f *Feature) HandleThanksButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch customID {
	case CustomIDThanksInfoButton:
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{CreateThanksInfoEmbed()},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			log.Errorf("Failed to send thanks info: %v", err)
		}
	default:
		log.Warnf("Unhandled points thanks button: %s", customID)
		common.RespondWithError(s, i, "Unknown interaction")
	}
}

// postWelcomeMessage posts the welcome embed to the configured thanks channel.
func (f *Feature) postWelcomeMessage(s *discordgo.Session, cfg *entities.GuildConfig) error {
	if !cfg.Points.HasThanksChannel() {
		return fmt.Errorf("no thanks channel configured")
	}

	_, err := s.ChannelMessageSendComplex(common.FormatID(*cfg.Points.ThanksChannelID), &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{CreateWelcomeEmbed(cfg)},
		Components: CreateWelcomeComponents(),
	})
	return err
}

// refresh re-renders the panel and runs the standard replace-and-confirm flow.
func (f *Feature) refresh(s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64, confirmation string) {
	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to re-render points panel: %v", err)
		panel = nil
	}
	common.ReplaceAndConfirm(s, i, panel, confirmation)
}

