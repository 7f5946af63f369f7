package sholat

import (
	"github.com/bwmarrin/discordgo"
)

// Custom IDs for the prayer reminder configuration panel.
const (
	CustomIDChannelSelect = "sholat_channel"
	CustomIDRoleSelect    = "sholat_role"
	CustomIDCitySelect    = "sholat_city"
)

// Cities with supported prayer schedules. The string select offers exactly
// this list; anything else submitted for the city is rejected.
var Cities = []string{
	"Jakarta",
	"Bandung",
	"Semarang",
	"Yogyakarta",
	"Surabaya",
	"Medan",
	"Palembang",
	"Makassar",
	"Denpasar",
	"Balikpapan",
}

// SupportedCity reports whether schedules exist for the given city.
func SupportedCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

func createPanelComponents(currentCity string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(Cities))
	for _, city := range Cities {
		options = append(options, discordgo.SelectMenuOption{
			Label:   city,
			Value:   city,
			Default: city == currentCity,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:     discordgo.ChannelSelectMenu,
					CustomID:     CustomIDChannelSelect,
					Placeholder:  "Pilih channel pengingat sholat",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.RoleSelectMenu,
					CustomID:    CustomIDRoleSelect,
					Placeholder: "Pilih role yang di-mention",
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    CustomIDCitySelect,
					Placeholder: "Pilih kota untuk jadwal sholat",
					Options:     options,
				},
			},
		},
	}
}
