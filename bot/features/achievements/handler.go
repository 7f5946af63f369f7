package achievements

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"pengurus/bot/common"
)

// HandleChannelSelect records the channel where achievements are announced
func (f *Feature) HandleChannelSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := common.SelectedID(s, i, "Pilih satu channel terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetAchievementsChannel(context.Background(), guildID, &channelID); err != nil {
		log.Errorf("Failed to set achievements channel: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Channel pengumuman diatur ke %s", common.ChannelMention(channelID)))
}

// HandleToggleButton flips achievement announcements on or off
func (f *Feature) HandleToggleButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	enabled, err := f.configs.ToggleAchievements(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to toggle achievements: %v", err)
		common.RespondWithError(s, i, "Gagal mengubah status pencapaian")
		return
	}

	confirmation := "✅ Pengumuman pencapaian dinonaktifkan"
	if enabled {
		confirmation = "✅ Pengumuman pencapaian diaktifkan"
	}

	f.refresh(s, i, guildID, confirmation)
}

func (f *Feature) refresh(s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64, confirmation string) {
	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to re-render achievements panel: %v", err)
		panel = nil
	}
	common.ReplaceAndConfirm(s, i, panel, confirmation)
}
