package discord_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/gt"
	"github.com/trailops/tripbot/pkg/domain/model"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
)

func textInputs(t *testing.T, components []discordgo.MessageComponent) []discordgo.TextInput {
	t.Helper()
	var inputs []discordgo.TextInput
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		gt.B(t, ok).True()
		gt.Equal(t, 1, len(row.Components))
		input, ok := row.Components[0].(discordgo.TextInput)
		gt.B(t, ok).True()
		inputs = append(inputs, input)
	}
	return inputs
}

func TestCategorySelectResponse(t *testing.T) {
	resp := discordSvc.NewUIBuilder().CategorySelectResponse()

	gt.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	gt.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	gt.Equal(t, "Select your trip type to continue:", resp.Data.Content)

	gt.Equal(t, 1, len(resp.Data.Components))
	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	gt.B(t, ok).True()
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	gt.B(t, ok).True()

	gt.Equal(t, discordgo.StringSelectMenu, menu.MenuType)
	gt.Equal(t, discordSvc.CustomIDCategorySelect, menu.CustomID)
	gt.Equal(t, 2, len(menu.Options))
	gt.Equal(t, "hike", menu.Options[0].Value)
	gt.Equal(t, "backpack", menu.Options[1].Value)
}

func TestHikeFormResponse(t *testing.T) {
	resp := discordSvc.NewUIBuilder().TripFormResponse(model.TripCategoryHike)

	gt.Equal(t, discordgo.InteractionResponseModal, resp.Type)
	gt.Equal(t, discordSvc.CustomIDHikeModal, resp.Data.CustomID)
	gt.Equal(t, "Plan Your Hike", resp.Data.Title)

	inputs := textInputs(t, resp.Data.Components)
	gt.Equal(t, 3, len(inputs))

	gt.Equal(t, discordSvc.FieldHikeLocation, inputs[0].CustomID)
	gt.True(t, inputs[0].Required)
	gt.Equal(t, discordSvc.FieldHikeDate, inputs[1].CustomID)
	gt.True(t, inputs[1].Required)
	gt.Equal(t, discordSvc.FieldHikeDistance, inputs[2].CustomID)
	gt.False(t, inputs[2].Required)
}

func TestBackpackFormResponse(t *testing.T) {
	resp := discordSvc.NewUIBuilder().TripFormResponse(model.TripCategoryBackpack)

	gt.Equal(t, discordgo.InteractionResponseModal, resp.Type)
	gt.Equal(t, discordSvc.CustomIDBackpackModal, resp.Data.CustomID)
	gt.Equal(t, "Plan Your Backpack Trip", resp.Data.Title)

	inputs := textInputs(t, resp.Data.Components)
	gt.Equal(t, 4, len(inputs))

	gt.Equal(t, discordSvc.FieldBackpackLocation, inputs[0].CustomID)
	gt.True(t, inputs[0].Required)
	gt.Equal(t, discordSvc.FieldBackpackDuration, inputs[1].CustomID)
	gt.True(t, inputs[1].Required)
	gt.Equal(t, discordSvc.FieldBackpackDates, inputs[2].CustomID)
	gt.True(t, inputs[2].Required)
	gt.Equal(t, discordSvc.FieldBackpackSpots, inputs[3].CustomID)
	gt.False(t, inputs[3].Required)
}
