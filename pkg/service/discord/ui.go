package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/trailops/tripbot/pkg/domain/model"
)

// Custom ID constants for interaction routing
const (
	CommandTrip = "trip"

	CustomIDCategorySelect = "trip_category_select"
	CustomIDHikeModal      = "hike_modal"
	CustomIDBackpackModal  = "backpack_modal"

	FieldHikeLocation = "hike_location"
	FieldHikeDate     = "hike_date"
	FieldHikeDistance = "hike_distance"

	FieldBackpackLocation = "backpack_location"
	FieldBackpackDuration = "backpack_duration"
	FieldBackpackDates    = "backpack_dates"
	FieldBackpackSpots    = "backpack_spots"
)

// UIBuilder builds the static interaction responses: the category selector
// and the two trip forms. Pure data, no API calls.
type UIBuilder struct{}

// NewUIBuilder creates a new UIBuilder instance
func NewUIBuilder() *UIBuilder {
	return &UIBuilder{}
}

// CategorySelectResponse builds the ephemeral category selector shown in
// reply to the /trip command
func (b *UIBuilder) CategorySelectResponse() *discordgo.InteractionResponse {
	menu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    CustomIDCategorySelect,
		Placeholder: "Choose trip type…",
		Options: []discordgo.SelectMenuOption{
			{Label: "Hike", Value: model.TripCategoryHike.String()},
			{Label: "Backpack", Value: model.TripCategoryBackpack.String()},
		},
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Select your trip type to continue:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{menu},
				},
			},
		},
	}
}

// TripFormResponse builds the modal for the selected trip category.
// Showing a modal is the only valid acknowledgment of a selection event.
func (b *UIBuilder) TripFormResponse(category model.TripCategory) *discordgo.InteractionResponse {
	switch category {
	case model.TripCategoryBackpack:
		return b.backpackFormResponse()
	default:
		return b.hikeFormResponse()
	}
}

func (b *UIBuilder) hikeFormResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: CustomIDHikeModal,
			Title:    "Plan Your Hike",
			Components: []discordgo.MessageComponent{
				textInputRow(FieldHikeLocation, "Location", "Where will you hike?", true),
				textInputRow(FieldHikeDate, "Date (MM/DD/YYYY)", "e.g. 07/15/2025", true),
				textInputRow(FieldHikeDistance, "Distance (optional, e.g. “8 miles”)", "e.g. 8 miles", false),
			},
		},
	}
}

func (b *UIBuilder) backpackFormResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: CustomIDBackpackModal,
			Title:    "Plan Your Backpack Trip",
			Components: []discordgo.MessageComponent{
				textInputRow(FieldBackpackLocation, "Location", "Where will you backpack?", true),
				textInputRow(FieldBackpackDuration, "Duration (e.g. “3 days 2 nights”)", "How long is the trip?", true),
				textInputRow(FieldBackpackDates, "Dates (MM/DD – MM/DD)", "e.g. 07/10 – 07/13", true),
				textInputRow(FieldBackpackSpots, "# of Spots (optional)", "e.g. 5 (or leave blank)", false),
			},
		},
	}
}

func textInputRow(customID, label, placeholder string, required bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Style:       discordgo.TextInputShort,
				Placeholder: placeholder,
				Required:    required,
			},
		},
	}
}
