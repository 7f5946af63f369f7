package sholat

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"pengurus/bot/common"
)

// HandleChannelSelect records the channel that receives prayer reminders
func (f *Feature) HandleChannelSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := common.SelectedID(s, i, "Pilih satu channel terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetSholatChannel(context.Background(), guildID, &channelID); err != nil {
		log.Errorf("Failed to set sholat channel: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Channel pengingat diatur ke %s", common.ChannelMention(channelID)))
}

// HandleRoleSelect records the role mentioned by prayer reminders
func (f *Feature) HandleRoleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	roleID, ok := common.SelectedID(s, i, "Pilih satu role terlebih dahulu")
	if !ok {
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetSholatReminderRole(context.Background(), guildID, &roleID); err != nil {
		log.Errorf("Failed to set sholat reminder role: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Role pengingat diatur ke %s", common.RoleMention(roleID)))
}

// HandleCitySelect records the city whose prayer schedule is used
func (f *Feature) HandleCitySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	city, ok := common.SelectedValue(s, i, "Pilih satu kota terlebih dahulu")
	if !ok {
		return
	}
	if !SupportedCity(city) {
		log.Warnf("Unsupported city submitted: %s", city)
		common.RespondWithError(s, i, "Kota tidak dikenal")
		return
	}
	guildID, ok := common.GuildIDFrom(s, i)
	if !ok {
		return
	}

	if err := f.configs.SetSholatCity(context.Background(), guildID, &city); err != nil {
		log.Errorf("Failed to set sholat city: %v", err)
		common.RespondWithError(s, i, "Gagal menyimpan pengaturan")
		return
	}

	f.refresh(s, i, guildID, fmt.Sprintf("✅ Kota diatur ke **%s**", city))
}

func (f *Feature) refresh(s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64, confirmation string) {
	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to re-render sholat panel: %v", err)
		panel = nil
	}
	common.ReplaceAndConfirm(s, i, panel, confirmation)
}
