package points

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"pengurus/bot/common"
	"pengurus/domain/interfaces"
)

// Feature handles the points module: the configuration panel, the gated
// enable/disable toggle, and the welcome message posted to the thanks channel.
type Feature struct {
	configs interfaces.GuildConfigService
}

// NewFeature creates a new points feature instance
func NewFeature(configs interfaces.GuildConfigService) *Feature {
	return &Feature{
		configs: configs,
	}
}

// HandleSetupCommand shows the points configuration panel
func (f *Feature) HandleSetupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "invalid guild id on setup interaction")
	}

	panel, err := f.RenderPanel(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to render points panel")
	}

	return common.ShowPanel(s, i, panel)
}

// RenderPanel builds the panel from the guild's current configuration.
func (f *Feature) RenderPanel(ctx context.Context, guildID int64) (*common.Panel, error) {
	cfg, err := f.configs.GetOrCreateConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}

	return &common.Panel{
		Embed:      CreatePanelEmbed(cfg),
		Components: CreatePanelComponents(cfg),
	}, nil
}
