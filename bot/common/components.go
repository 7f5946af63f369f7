package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// SelectedValue extracts the single selected value from a select-menu
// interaction. An empty selection gets a validation reply and reports false,
// so callers never mutate anything for it.
func SelectedValue(s *discordgo.Session, i *discordgo.InteractionCreate, emptyMessage string) (string, bool) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		RespondWithError(s, i, emptyMessage)
		return "", false
	}
	return values[0], true
}

// SelectedID extracts the single selected snowflake from a select-menu
// interaction, with the same empty-selection contract as SelectedValue.
func SelectedID(s *discordgo.Session, i *discordgo.InteractionCreate, emptyMessage string) (int64, bool) {
	value, ok := SelectedValue(s, i, emptyMessage)
	if !ok {
		return 0, false
	}

	id, err := ParseID(value)
	if err != nil {
		log.Errorf("Invalid snowflake in select values: %s", value)
		RespondWithError(s, i, "Pilihan tidak valid")
		return 0, false
	}
	return id, true
}

// GuildIDFrom parses the numeric guild id off an interaction. Interactions
// from DMs carry no guild id and get a validation reply.
func GuildIDFrom(s *discordgo.Session, i *discordgo.InteractionCreate) (int64, bool) {
	guildID, err := ParseID(i.GuildID)
	if err != nil {
		log.Errorf("Invalid guild id on interaction: %s", i.GuildID)
		RespondWithError(s, i, "Perintah ini hanya bisa dipakai di server")
		return 0, false
	}
	return guildID, true
}

// ExtractModalInput returns the value of the named text input from a modal
// submission, or the empty string when the field is absent.
func ExtractModalInput(i *discordgo.InteractionCreate, customID string) string {
	for _, component := range i.ModalSubmitData().Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			if textInput, ok := comp.(*discordgo.TextInput); ok && textInput.CustomID == customID {
				return textInput.Value
			}
		}
	}
	return ""
}
