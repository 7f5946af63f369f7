package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"pengurus/bot/features/achievements"
	"pengurus/bot/features/points"
	"pengurus/bot/features/presensi"
	"pengurus/bot/features/sholat"
	"pengurus/domain/interfaces"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	configs    interfaces.GuildConfigService
	cooldowns  *CooldownTracker
	dispatcher *CommandDispatcher
	router     *InteractionRouter

	// Feature modules
	points       *points.Feature
	presensi     *presensi.Feature
	sholat       *sholat.Feature
	achievements *achievements.Feature
}

// New creates a new bot instance with all features wired and the gateway open
func New(config Config, configService interfaces.GuildConfigService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	cooldowns := NewCooldownTracker()
	dispatcher := NewCommandDispatcher(cooldowns)

	bot := &Bot{
		config:     config,
		session:    dg,
		configs:    configService,
		cooldowns:  cooldowns,
		dispatcher: dispatcher,
		router:     NewInteractionRouter(dispatcher),
	}

	bot.points = points.NewFeature(configService)
	bot.presensi = presensi.NewFeature(configService)
	bot.sholat = sholat.NewFeature(configService)
	bot.achievements = achievements.NewFeature(configService)

	bot.registerCommandHandlers()
	bot.registerRoutes()

	dg.AddHandler(bot.router.HandleInteractionCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot is running")
	return bot, nil
}

// registerRoutes binds every component custom ID to its feature handler.
// Custom IDs are stable identifiers, so panels posted before a restart keep
// working after it.
func (b *Bot) registerRoutes() {
	r := b.router

	// Points
	r.HandleChannelSelect(points.CustomIDLogsChannelSelect, b.points.HandleLogsChannelSelect)
	r.HandleChannelSelect(points.CustomIDThanksChannelSelect, b.points.HandleThanksChannelSelect)
	r.HandleRoleSelect(points.CustomIDManagerRoleSelect, b.points.HandleManagerRoleSelect)
	r.HandleUserSelect(points.CustomIDCuratorUserSelect, b.points.HandleCuratorUserSelect)
	r.HandleButton(points.CustomIDEnableButton, b.points.HandleEnableButton)
	r.HandleButton(points.CustomIDDisableButton, b.points.HandleDisableButton)
	r.HandleButton(points.CustomIDWelcomeEditButton, b.points.HandleWelcomeEditButton)
	r.HandleButtonPrefix(points.CustomIDThanksPrefix, b.points.HandleThanksButton)
	r.HandleModal(points.CustomIDWelcomeModal, b.points.HandleWelcomeModalSubmit)

	// Presensi
	r.HandleChannelSelect(presensi.CustomIDChannelSelect, b.presensi.HandleChannelSelect)
	r.HandleRoleSelect(presensi.CustomIDRoleSelect, b.presensi.HandleRoleSelect)

	// Sholat
	r.HandleChannelSelect(sholat.CustomIDChannelSelect, b.sholat.HandleChannelSelect)
	r.HandleRoleSelect(sholat.CustomIDRoleSelect, b.sholat.HandleRoleSelect)
	r.HandleStringSelect(sholat.CustomIDCitySelect, b.sholat.HandleCitySelect)

	// Achievements
	r.HandleChannelSelect(achievements.CustomIDChannelSelect, b.achievements.HandleChannelSelect)
	r.HandleButton(achievements.CustomIDToggleButton, b.achievements.HandleToggleButton)
}

// Session exposes the underlying Discord session
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	b.cooldowns.Close()
	return b.session.Close()
}
