package common

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondEphemeral sends a plain ephemeral message as the interaction response
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// ConfirmEphemeral sends a short ephemeral confirmation as a follow-up to an
// already acknowledged interaction. Failures are logged, never surfaced; the
// confirmation is cosmetic and the state change it confirms is already
// committed.
func ConfirmEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending confirmation follow-up: %v", err)
	}
}

// ChannelMention returns a Discord mention string for a channel
func ChannelMention(channelID int64) string {
	return fmt.Sprintf("<#%d>", channelID)
}

// RoleMention returns a Discord mention string for a role
func RoleMention(roleID int64) string {
	return fmt.Sprintf("<@&%d>", roleID)
}

// UserMention returns a Discord mention string for a user
func UserMention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}

// RelativeTimestamp formats a time as a Discord relative timestamp ("in 2 seconds")
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
