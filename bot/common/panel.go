package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Panel is a rendered configuration panel: one embed plus the interactive
// controls attached to it. Panels are derived values, recomputed from the
// current guild configuration on every relevant mutation and never stored.
type Panel struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// ShowPanel sends a panel as the initial response to a command interaction
func ShowPanel(s *discordgo.Session, i *discordgo.InteractionCreate, panel *Panel) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.Embed},
			Components: panel.Components,
		},
	})
}

// UpdatePanel replaces the triggering message in place with the re-rendered
// panel. Valid only on component interactions.
func UpdatePanel(s *discordgo.Session, i *discordgo.InteractionCreate, panel *Panel) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.Embed},
			Components: panel.Components,
		},
	})
}

// ReplaceAndConfirm completes a configuration mutation: swap the panel message
// in place, then confirm the change ephemerally. The write has already been
// persisted when this runs, so a failed edit only degrades the feedback; the
// confirmation is delivered through whichever channel is still available and
// the state change is never rolled back.
func ReplaceAndConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, panel *Panel, confirmation string) {
	if panel == nil {
		if err := RespondEphemeral(s, i, confirmation); err != nil {
			log.Errorf("Error confirming configuration change: %v", err)
		}
		return
	}
	if err := UpdatePanel(s, i, panel); err != nil {
		log.Errorf("Error updating panel message: %v", err)
		// An unacknowledged interaction can still take a direct reply; an
		// already acknowledged one only accepts a followup.
		if respErr := RespondEphemeral(s, i, confirmation); respErr != nil {
			ConfirmEphemeral(s, i, confirmation)
		}
		return
	}
	ConfirmEphemeral(s, i, confirmation)
}
