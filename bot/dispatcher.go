package bot

import (
	"errors"
	"fmt"
	"time"

	"pengurus/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Command binds a slash command definition to its handler and cooldown window
type Command struct {
	Definition *discordgo.ApplicationCommand
	Cooldown   time.Duration // zero means DefaultCooldown
	Handler    func(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// CommandDispatcher resolves command invocations against a registered command
// table, applies per-user cooldowns and isolates handler failures so one bad
// invocation never affects another.
type CommandDispatcher struct {
	commands  map[string]*Command
	cooldowns *CooldownTracker
}

// NewCommandDispatcher creates a dispatcher backed by the given cooldown tracker
func NewCommandDispatcher(cooldowns *CooldownTracker) *CommandDispatcher {
	return &CommandDispatcher{
		commands:  make(map[string]*Command),
		cooldowns: cooldowns,
	}
}

// Register adds a command to the dispatch table
func (d *CommandDispatcher) Register(cmd *Command) {
	d.commands[cmd.Definition.Name] = cmd
}

// Definitions returns the application command definitions for registration
func (d *CommandDispatcher) Definitions() []*discordgo.ApplicationCommand {
	definitions := make([]*discordgo.ApplicationCommand, 0, len(d.commands))
	for _, cmd := range d.commands {
		definitions = append(definitions, cmd.Definition)
	}
	return definitions
}

// Dispatch resolves and executes one command invocation.
//
// Unknown commands are logged and dropped without a reply: the user already
// sees the platform's own unknown-command UX, so a miss here indicates a
// registration bug rather than a user error. A live cooldown rejects the
// invocation with the remaining wait and leaves the window untouched; only a
// dispatched invocation starts one.
func (d *CommandDispatcher) Dispatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	cmd, ok := d.commands[name]
	if !ok {
		log.Warnf("Received unregistered command %q", name)
		return
	}

	userID := common.InteractionUserID(i)
	if expiry, active := d.cooldowns.Active(name, userID, time.Now()); active {
		msg := fmt.Sprintf("⏳ Sabar! You can use `/%s` again %s.", name, common.RelativeTimestamp(expiry))
		if err := common.RespondEphemeral(s, i, msg); err != nil {
			log.Errorf("Failed to send cooldown notice: %v", err)
		}
		return
	}

	window := cmd.Cooldown
	if window <= 0 {
		window = DefaultCooldown
	}
	d.cooldowns.Begin(name, userID, window)

	if err := cmd.Handler(s, i); err != nil {
		d.reportFailure(s, i, name, userID, err)
	}
}

// reportFailure logs a handler failure with context and tells the invoking
// user. User-caused errors keep their own message; everything else gets the
// generic error embed.
func (d *CommandDispatcher) reportFailure(s *discordgo.Session, i *discordgo.InteractionCreate, name, userID string, err error) {
	var botErr *common.BotError
	if errors.As(err, &botErr) && botErr.Err == nil {
		if respErr := common.RespondEphemeral(s, i, fmt.Sprintf("❌ %s", botErr.UserMessage)); respErr != nil {
			common.FollowUpWithError(s, i, botErr.UserMessage)
		}
		return
	}

	log.WithFields(log.Fields{
		"command": name,
		"user_id": userID,
		"error":   err.Error(),
	}).Error("Command handler failed")
	common.ReportFailure(s, i)
}
