package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
	"github.com/trailops/tripbot/pkg/utils/apperr"
	"github.com/trailops/tripbot/pkg/utils/async"
)

// handleModalSubmit routes a form submission to the matching trip branch
func (h *Handler) handleModalSubmit(ctx context.Context, event *discordgo.InteractionCreate) error {
	data := event.ModalSubmitData()
	fields := modalFieldValues(data)

	switch data.CustomID {
	case discordSvc.CustomIDHikeModal:
		return h.handleHikeSubmission(ctx, event, fields)

	case discordSvc.CustomIDBackpackModal:
		return h.handleBackpackSubmission(ctx, event, fields)

	default:
		ctxlog.From(ctx).Debug("Unknown modal submission", "customID", data.CustomID)
		return nil
	}
}

// handleHikeSubmission defers the acknowledgment, posts the hike poll in the
// background, and finalizes the deferred reply with the outcome.
func (h *Handler) handleHikeSubmission(ctx context.Context, event *discordgo.InteractionCreate, fields map[string]string) error {
	req, err := model.NewHikeRequest(
		fields[discordSvc.FieldHikeLocation],
		fields[discordSvc.FieldHikeDate],
		fields[discordSvc.FieldHikeDistance],
	)
	if err != nil {
		return h.client.RespondInteraction(ctx, event.Interaction,
			ephemeralMessageResponse("Your hike form was missing required fields. Please try again."))
	}

	if err := h.client.RespondInteraction(ctx, event.Interaction, deferredEphemeralResponse()); err != nil {
		return goerr.Wrap(err, "failed to defer hike submission acknowledgment")
	}

	guildID := types.GuildID(event.GuildID)
	interaction := event.Interaction

	async.Dispatch(ctx, func(ctx context.Context) error {
		poll, err := h.tripUC.CreateHikePoll(ctx, guildID, req)
		if err != nil {
			h.finalize(ctx, interaction, h.userFacingMessage(err))
			return goerr.Wrap(err, "failed to create hike poll")
		}

		h.finalize(ctx, interaction, fmt.Sprintf("Your hike poll has been posted in <#%s>.", poll.ChannelID))
		return nil
	})

	return nil
}

// handleBackpackSubmission defers the acknowledgment, provisions the trip
// resources in the background, and finalizes with a success summary naming
// the new channel and role, or a stage-specific error message.
func (h *Handler) handleBackpackSubmission(ctx context.Context, event *discordgo.InteractionCreate, fields map[string]string) error {
	req, err := model.NewBackpackRequest(
		fields[discordSvc.FieldBackpackLocation],
		fields[discordSvc.FieldBackpackDuration],
		fields[discordSvc.FieldBackpackDates],
		fields[discordSvc.FieldBackpackSpots],
	)
	if err != nil {
		return h.client.RespondInteraction(ctx, event.Interaction,
			ephemeralMessageResponse("Your backpack trip form was missing required fields. Please try again."))
	}

	if err := h.client.RespondInteraction(ctx, event.Interaction, deferredEphemeralResponse()); err != nil {
		return goerr.Wrap(err, "failed to defer backpack submission acknowledgment")
	}

	guildID := types.GuildID(event.GuildID)
	organizer := types.UserID(organizerID(event))
	originChannel := types.ChannelID(event.ChannelID)
	interaction := event.Interaction

	async.Dispatch(ctx, func(ctx context.Context) error {
		resources, err := h.tripUC.CreateBackpackTrip(ctx, guildID, organizer, originChannel, req)
		if err != nil {
			h.finalize(ctx, interaction, h.userFacingMessage(err))
			return goerr.Wrap(err, "failed to create backpack trip")
		}

		h.finalize(ctx, interaction, fmt.Sprintf(
			"Your backpack trip is ready! Head over to <#%s> and grab the <@&%s> role.",
			resources.ChannelID, resources.RoleID,
		))
		return nil
	})

	return nil
}

// finalize edits the deferred reply with the final outcome. The user already
// received the deferred acknowledgment, so an edit failure is only logged.
func (h *Handler) finalize(ctx context.Context, interaction *discordgo.Interaction, content string) {
	edit := &discordgo.WebhookEdit{Content: &content}
	if _, err := h.client.EditInteractionResponse(ctx, interaction, edit); err != nil {
		apperr.Handle(ctx, err)
	}
}

// userFacingMessage maps a fatal trip-creation failure to its user-visible
// message. Untagged errors get a generic message; details stay in the logs.
func (h *Handler) userFacingMessage(err error) string {
	switch {
	case goerr.HasTag(err, model.ErrTagMissingPrerequisiteChannel):
		return fmt.Sprintf("I could not find a channel named “%s”. Please create one first.", h.pollChannelName)
	case goerr.HasTag(err, model.ErrTagCategoryUnavailable):
		return fmt.Sprintf("I couldn't find or create the “%s” category. Check my permissions and try again.", h.categoryName)
	case goerr.HasTag(err, model.ErrTagRoleCreationFailed):
		return "I couldn't create a role for this trip. Check my permissions and try again."
	case goerr.HasTag(err, model.ErrTagChannelCreationFailed):
		return "I couldn't create the trip channel. The trip role has been removed; please try again."
	default:
		return "Something went wrong while creating your trip. Please try again."
	}
}

// modalFieldValues flattens a modal submission into customID → value pairs
func modalFieldValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	fields := make(map[string]string)
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}

func deferredEphemeralResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

func ephemeralMessageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
