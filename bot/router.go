package bot

import (
	"strings"

	"pengurus/bot/common"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ComponentHandler handles one component or modal interaction
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

type prefixRoute struct {
	prefix  string
	handler ComponentHandler
}

// componentTable is one custom-id namespace. Namespaces are independent per
// interaction kind: routing branches on kind before any table lookup, so the
// same literal id in two tables can never misroute.
type componentTable struct {
	kind     string
	exact    map[string]ComponentHandler
	prefixes []prefixRoute
}

func newComponentTable(kind string) *componentTable {
	return &componentTable{
		kind:  kind,
		exact: make(map[string]ComponentHandler),
	}
}

func (t *componentTable) handle(customID string, handler ComponentHandler) {
	t.exact[customID] = handler
}

func (t *componentTable) handlePrefix(prefix string, handler ComponentHandler) {
	t.prefixes = append(t.prefixes, prefixRoute{prefix: prefix, handler: handler})
}

// route resolves a custom id against the table: exact match first, then
// registered prefixes. Unmatched ids get a generic ephemeral reply, never a
// crash.
func (t *componentTable) route(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	if handler, ok := t.exact[customID]; ok {
		handler(s, i)
		return
	}
	for _, p := range t.prefixes {
		if strings.HasPrefix(customID, p.prefix) {
			p.handler(s, i)
			return
		}
	}

	log.WithFields(log.Fields{
		"kind":      t.kind,
		"custom_id": customID,
	}).Warn("Unmatched component interaction")
	common.RespondWithError(s, i, "Unknown interaction")
}

// InteractionRouter classifies each inbound interaction by kind and forwards
// it to exactly one typed sub-router. Kinds outside its scope are silently
// dropped: the platform may deliver interaction kinds this router was never
// built for.
type InteractionRouter struct {
	dispatcher     *CommandDispatcher
	buttons        *componentTable
	modals         *componentTable
	channelSelects *componentTable
	roleSelects    *componentTable
	userSelects    *componentTable
	stringSelects  *componentTable
}

// NewInteractionRouter creates a router over the given command dispatcher
func NewInteractionRouter(dispatcher *CommandDispatcher) *InteractionRouter {
	return &InteractionRouter{
		dispatcher:     dispatcher,
		buttons:        newComponentTable("button"),
		modals:         newComponentTable("modal"),
		channelSelects: newComponentTable("channel_select"),
		roleSelects:    newComponentTable("role_select"),
		userSelects:    newComponentTable("user_select"),
		stringSelects:  newComponentTable("string_select"),
	}
}

// HandleButton registers a button handler by exact custom id
func (r *InteractionRouter) HandleButton(customID string, handler ComponentHandler) {
	r.buttons.handle(customID, handler)
}

// HandleButtonPrefix registers a button handler for a custom id prefix
func (r *InteractionRouter) HandleButtonPrefix(prefix string, handler ComponentHandler) {
	r.buttons.handlePrefix(prefix, handler)
}

// HandleModal registers a modal submit handler by exact custom id
func (r *InteractionRouter) HandleModal(customID string, handler ComponentHandler) {
	r.modals.handle(customID, handler)
}

// HandleChannelSelect registers a channel select-menu handler by exact custom id
func (r *InteractionRouter) HandleChannelSelect(customID string, handler ComponentHandler) {
	r.channelSelects.handle(customID, handler)
}

// HandleRoleSelect registers a role select-menu handler by exact custom id
func (r *InteractionRouter) HandleRoleSelect(customID string, handler ComponentHandler) {
	r.roleSelects.handle(customID, handler)
}

// HandleUserSelect registers a user select-menu handler by exact custom id
func (r *InteractionRouter) HandleUserSelect(customID string, handler ComponentHandler) {
	r.userSelects.handle(customID, handler)
}

// HandleStringSelect registers a string select-menu handler by exact custom id
func (r *InteractionRouter) HandleStringSelect(customID string, handler ComponentHandler) {
	r.stringSelects.handle(customID, handler)
}

// HandleInteractionCreate is the discordgo handler entry point. Exactly one
// branch fires per event; errors inside a sub-router are that sub-router's
// responsibility.
func (r *InteractionRouter) HandleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := log.WithFields(log.Fields{
		"trace_id": uuid.NewString(),
		"guild_id": i.GuildID,
	})

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		logger.Debugf("Dispatching command %q", i.ApplicationCommandData().Name)
		r.dispatcher.Dispatch(s, i)

	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		logger.Debugf("Routing %v component %q", data.ComponentType, data.CustomID)

		switch data.ComponentType {
		case discordgo.ButtonComponent:
			r.buttons.route(s, i, data.CustomID)
		case discordgo.ChannelSelectMenuComponent:
			r.channelSelects.route(s, i, data.CustomID)
		case discordgo.RoleSelectMenuComponent:
			r.roleSelects.route(s, i, data.CustomID)
		case discordgo.UserSelectMenuComponent:
			r.userSelects.route(s, i, data.CustomID)
		case discordgo.SelectMenuComponent:
			r.stringSelects.route(s, i, data.CustomID)
		}

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		logger.Debugf("Routing modal %q", data.CustomID)
		r.modals.route(s, i, data.CustomID)
	}
}
