package points

import (
	"github.com/bwmarrin/discordgo"

	"pengurus/domain/entities"
)

// Custom IDs for the points configuration panel and the public welcome message.
const (
	CustomIDLogsChannelSelect   = "points_logs_channel"
	CustomIDThanksChannelSelect = "points_thanks_channel"
	CustomIDManagerRoleSelect   = "points_manager_role"
	CustomIDCuratorUserSelect   = "points_curator_user"
	CustomIDEnableButton        = "points_enable"
	CustomIDDisableButton       = "points_disable"
	CustomIDWelcomeEditButton   = "points_welcome_edit"
	CustomIDWelcomeModal        = "points_welcome_modal"

	// Buttons on the welcome message carry a shared prefix so a single
	// handler can serve every instance ever posted.
	CustomIDThanksPrefix     = "points_thanks_"
	CustomIDThanksInfoButton = "points_thanks_info"
)

// CreatePanelComponents builds the interactive rows for the points panel.
// The enable/disable button reflects the current state, and enabling stays
// disabled until both required channels are configured.
func CreatePanelComponents(cfg *entities.GuildConfig) []discordgo.MessageComponent {
	toggle := discordgo.Button{
		Label:    "Aktifkan Poin",
		Style:    discordgo.SuccessButton,
		CustomID: CustomIDEnableButton,
		Disabled: !cfg.Points.ReadyToEnable(),
	}
	if cfg.Points.Enabled {
		toggle = discordgo.Button{
			Label:    "Nonaktifkan Poin",
			Style:    discordgo.DangerButton,
			CustomID: CustomIDDisableButton,
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:     discordgo.ChannelSelectMenu,
					CustomID:     CustomIDLogsChannelSelect,
					Placeholder:  "Pilih channel log poin",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:     discordgo.ChannelSelectMenu,
					CustomID:     CustomIDThanksChannelSelect,
					Placeholder:  "Pilih channel terima kasih",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.RoleSelectMenu,
					CustomID:    CustomIDManagerRoleSelect,
					Placeholder: "Pilih role pengelola poin",
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.UserSelectMenu,
					CustomID:    CustomIDCuratorUserSelect,
					Placeholder: "Pilih kurator poin",
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				toggle,
				discordgo.Button{
					Label:    "Edit Pesan Sambutan",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDWelcomeEditButton,
				},
			},
		},
	}
}

// CreateWelcomeModal builds the modal used to edit the welcome message that
// gets posted to the thanks channel when points are enabled.
func CreateWelcomeModal(current string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: CustomIDWelcomeModal,
		Title:    "Pesan Sambutan Poin",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "message",
						Label:       "Pesan sambutan",
						Style:       discordgo.TextInputParagraph,
						Value:       current,
						Placeholder: "Selamat datang di sistem poin komunitas!",
						Required:    true,
						MinLength:   1,
						MaxLength:   1000,
					},
				},
			},
		},
	}
}

// CreateWelcomeComponents builds the button row attached to the public
// welcome message.
func CreateWelcomeComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Cara Kerja Poin",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDThanksInfoButton,
					Emoji: &discordgo.ComponentEmoji{
						Name: "⭐",
					},
				},
			},
		},
	}
}
