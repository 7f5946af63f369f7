package presensi

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"pengurus/bot/common"
)

// HandleChannelSelect records the channel where daily attendance happens
func (f *Feature) HandleChannelSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := common.SelectedID(s, i, "Pilih satu channel terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPresensiChannel(context.Background(), guildID, &channelID); err != nil {
		log.Errorf("Failed to set presensi channel: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Channel presensi diatur ke %s", common.ChannelMention(channelID)))
}

// HandleRoleSelect records the role granted to members who check in
func (f *Feature) HandleRoleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	roleID, ok := common.SelectedID(s, i, "Pilih satu role terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetPresensiRole(context.Background(), guildID, &roleID); err != nil {
		log.Errorf("Failed to set presensi role: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Role presensi diatur ke %s", common.RoleMention(roleID)))
}

func (f *Feature) refresh(s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64, confirmation string) {
	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to re-render presensi panel: %v", err)
		panel = nil
	}
	common.ReplaceAndConfirm(s, i, panel, confirmation)
}
