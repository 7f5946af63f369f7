package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to the Discord user
	LogMessage  string // Internal message for logging
	Ephemeral   bool   // Whether the user message should be ephemeral
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (empty selection,
// missing prerequisites). These are never logged as failures.
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// RespondWithError sends an error message as an ephemeral interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an error message as a follow-up to an already
// acknowledged interaction. The interaction contract forbids a second reply,
// so this is the only legal error channel once a response exists.
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}

// ErrorEmbed builds the generic error embed shown when a handler fails
func ErrorEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Terjadi Kesalahan",
		Description: "Something went wrong while handling that. Please try again later.",
		Color:       ColorDanger,
	}
}

// ReportFailure reports a handler failure to the invoking user with a generic
// error embed. It first tries a direct response; if the interaction was
// already replied to or deferred, it falls back to a follow-up message.
func ReportFailure(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{ErrorEmbed()},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}

	// Interaction already acknowledged; the contract forbids a second reply.
	_, err = s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{ErrorEmbed()},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending failure follow-up: %v", err)
	}
}
