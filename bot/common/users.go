package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ParseID converts a Discord snowflake string to int64
func ParseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatID converts an int64 snowflake to its string form
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// InteractionUserID returns the invoking user's id for both guild and DM interactions
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// IsUserAdmin checks if a user has administrator permissions in a guild
func IsUserAdmin(s *discordgo.Session, guildID, userID string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	guild, err := s.Guild(guildID)
	if err != nil {
		log.Errorf("Failed to get guild: %v", err)
		return false
	}

	if guild.OwnerID == userID {
		return true
	}

	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true
			}
		}
	}
	return false
}

// MemberHasRole checks whether the interaction member carries the given role id
func MemberHasRole(member *discordgo.Member, roleID int64) bool {
	if member == nil {
		return false
	}
	want := FormatID(roleID)
	for _, r := range member.Roles {
		if r == want {
			return true
		}
	}
	return false
}
