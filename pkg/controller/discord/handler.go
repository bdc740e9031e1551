package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/interfaces"
	"github.com/trailops/tripbot/pkg/domain/model"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
)

// Handler routes inbound interaction events to the trip-creation stage
// handlers. There is no session store: every stage re-derives its data from
// the event payload, relying on the platform to correlate follow-up events to
// the conversation that produced them.
//
// Each event permits exactly one acknowledgment. Every branch below performs
// a single RespondInteraction call; submissions defer and later edit.
type Handler struct {
	tripUC interfaces.TripUseCase
	client interfaces.DiscordClient
	ui     *discordSvc.UIBuilder

	pollChannelName string
	categoryName    string
}

// NewHandler creates a new interaction handler
func NewHandler(tripUC interfaces.TripUseCase, client interfaces.DiscordClient, pollChannelName, categoryName string) *Handler {
	return &Handler{
		tripUC:          tripUC,
		client:          client,
		ui:              discordSvc.NewUIBuilder(),
		pollChannelName: pollChannelName,
		categoryName:    categoryName,
	}
}

// HandleInteractionCreate handles one inbound interaction event
func (h *Handler) HandleInteractionCreate(ctx context.Context, event *discordgo.InteractionCreate) error {
	switch event.Type {
	case discordgo.InteractionApplicationCommand:
		return h.handleCommand(ctx, event)

	case discordgo.InteractionMessageComponent:
		return h.handleComponent(ctx, event)

	case discordgo.InteractionModalSubmit:
		return h.handleModalSubmit(ctx, event)

	default:
		ctxlog.From(ctx).Debug("Unhandled interaction type",
			"type", event.Type,
		)
		return nil
	}
}

// handleCommand replies to the trip command with the ephemeral category selector
func (h *Handler) handleCommand(ctx context.Context, event *discordgo.InteractionCreate) error {
	data := event.ApplicationCommandData()
	if data.Name != discordSvc.CommandTrip {
		ctxlog.From(ctx).Debug("Unknown command", "name", data.Name)
		return nil
	}

	ctxlog.From(ctx).Info("Trip command invoked",
		"user", organizerID(event),
		"channel", event.ChannelID,
	)

	return h.client.RespondInteraction(ctx, event.Interaction, h.ui.CategorySelectResponse())
}

// handleComponent handles the category selection. Showing the matching form
// is the only valid acknowledgment of a selection event.
func (h *Handler) handleComponent(ctx context.Context, event *discordgo.InteractionCreate) error {
	data := event.MessageComponentData()
	if data.CustomID != discordSvc.CustomIDCategorySelect {
		ctxlog.From(ctx).Debug("Unknown component", "customID", data.CustomID)
		return nil
	}
	if len(data.Values) == 0 {
		return goerr.New("category selection carries no value")
	}

	category, err := model.ParseTripCategory(data.Values[0])
	if err != nil {
		return goerr.Wrap(err, "failed to parse selected trip category")
	}

	ctxlog.From(ctx).Info("Trip category selected",
		"category", category,
		"user", organizerID(event),
	)

	return h.client.RespondInteraction(ctx, event.Interaction, h.ui.TripFormResponse(category))
}

// organizerID extracts the acting user's ID from a guild interaction
func organizerID(event *discordgo.InteractionCreate) string {
	if event.Member != nil && event.Member.User != nil {
		return event.Member.User.ID
	}
	if event.User != nil {
		return event.User.ID
	}
	return ""
}
