package discord_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/trailops/tripbot/pkg/controller/discord"
	"github.com/trailops/tripbot/pkg/domain/interfaces/mocks"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
)

func newHandler(tripUC *mocks.TripUseCaseMock, client *mocks.DiscordClientMock) *controller.Handler {
	return controller.NewHandler(tripUC, client, "hikes", "Backpacking Trips")
}

func commandEvent(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "G-TRAILHEAD",
			ChannelID: "C-ORIGIN",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "U-ORGANIZER"},
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
		},
	}
}

func selectEvent(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionMessageComponent,
			GuildID: "G-TRAILHEAD",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "U-ORGANIZER"},
			},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.SelectMenuComponent,
				Values:        values,
			},
		},
	}
}

func modalEvent(customID string, fields map[string]string) *discordgo.InteractionCreate {
	var rows []discordgo.MessageComponent
	for id, value := range fields {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: id, Value: value},
			},
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionModalSubmit,
			GuildID:   "G-TRAILHEAD",
			ChannelID: "C-ORIGIN",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "U-ORGANIZER"},
			},
			Data: discordgo.ModalSubmitInteractionData{
				CustomID:   customID,
				Components: rows,
			},
		},
	}
}

// editRecorder wires the mock's EditInteractionResponse to a channel so tests
// can wait for the background dispatch to finalize the deferred reply.
func editRecorder(mockClient *mocks.DiscordClientMock) <-chan string {
	edits := make(chan string, 1)
	mockClient.EditInteractionResponseFunc = func(ctx context.Context, interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
		edits <- *edit.Content
		return &discordgo.Message{}, nil
	}
	return edits
}

func waitForEdit(t *testing.T, edits <-chan string) string {
	t.Helper()
	select {
	case content := <-edits:
		return content
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the deferred reply to be finalized")
		return ""
	}
}

func TestHandleCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("Trip command replies with category selector", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, commandEvent("trip")))

		responds := mockClient.RespondInteractionCalls()
		gt.Equal(t, 1, len(responds))
		resp := responds[0].Resp
		gt.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
		gt.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
		gt.Equal(t, 1, len(resp.Data.Components))

		row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
		gt.B(t, ok).True()
		menu, ok := row.Components[0].(discordgo.SelectMenu)
		gt.B(t, ok).True()
		gt.Equal(t, discordSvc.CustomIDCategorySelect, menu.CustomID)
		gt.Equal(t, 2, len(menu.Options))
	})

	t.Run("Unknown command is ignored", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, commandEvent("ping")))
		gt.Equal(t, 0, len(mockClient.RespondInteractionCalls()))
	})
}

func TestHandleCategorySelection(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		value         string
		expectedModal string
	}{
		{name: "Hike selection opens hike form", value: "hike", expectedModal: discordSvc.CustomIDHikeModal},
		{name: "Backpack selection opens backpack form", value: "backpack", expectedModal: discordSvc.CustomIDBackpackModal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := &mocks.DiscordClientMock{
				RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
					return nil
				},
			}
			handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

			gt.NoError(t, handler.HandleInteractionCreate(ctx, selectEvent(discordSvc.CustomIDCategorySelect, tc.value)))

			responds := mockClient.RespondInteractionCalls()
			gt.Equal(t, 1, len(responds))
			gt.Equal(t, discordgo.InteractionResponseModal, responds[0].Resp.Type)
			gt.Equal(t, tc.expectedModal, responds[0].Resp.Data.CustomID)
		})
	}

	t.Run("Unknown component is ignored", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, selectEvent("other_select", "hike")))
		gt.Equal(t, 0, len(mockClient.RespondInteractionCalls()))
	})

	t.Run("Empty selection is an error", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		err := handler.HandleInteractionCreate(ctx, selectEvent(discordSvc.CustomIDCategorySelect))
		gt.Error(t, err)
	})

	t.Run("Unknown category is an error", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		err := handler.HandleInteractionCreate(ctx, selectEvent(discordSvc.CustomIDCategorySelect, "kayak"))
		gt.Error(t, err)
		gt.Equal(t, 0, len(mockClient.RespondInteractionCalls()))
	})
}

func TestHandleHikeSubmission(t *testing.T) {
	ctx := context.Background()

	validFields := map[string]string{
		discordSvc.FieldHikeLocation: "Mount Si",
		discordSvc.FieldHikeDate:     "07/15/2025",
		discordSvc.FieldHikeDistance: "8 miles",
	}

	t.Run("Defers then posts the poll", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		edits := editRecorder(mockClient)
		mockUC := &mocks.TripUseCaseMock{
			CreateHikePollFunc: func(ctx context.Context, guildID types.GuildID, req *model.TripRequest) (*model.HikePoll, error) {
				return &model.HikePoll{ChannelID: "C-HIKES", MessageID: "M-POLL"}, nil
			},
		}
		handler := newHandler(mockUC, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDHikeModal, validFields)))

		content := waitForEdit(t, edits)
		gt.Equal(t, "Your hike poll has been posted in <#C-HIKES>.", content)

		responds := mockClient.RespondInteractionCalls()
		gt.Equal(t, 1, len(responds))
		gt.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, responds[0].Resp.Type)
		gt.Equal(t, discordgo.MessageFlagsEphemeral, responds[0].Resp.Data.Flags)

		calls := mockUC.CreateHikePollCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, types.GuildID("G-TRAILHEAD"), calls[0].GuildID)
		gt.Equal(t, "Mount Si", calls[0].Req.Location)
		gt.Equal(t, "8 miles", calls[0].Req.Distance)
	})

	t.Run("Missing required field replies without deferring", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		mockUC := &mocks.TripUseCaseMock{}
		handler := newHandler(mockUC, mockClient)

		fields := map[string]string{discordSvc.FieldHikeDate: "07/15/2025"}
		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDHikeModal, fields)))

		responds := mockClient.RespondInteractionCalls()
		gt.Equal(t, 1, len(responds))
		gt.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, responds[0].Resp.Type)
		gt.S(t, responds[0].Resp.Data.Content).Contains("missing required fields")
		gt.Equal(t, 0, len(mockUC.CreateHikePollCalls()))
	})

	t.Run("Missing poll channel yields a guiding message", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		edits := editRecorder(mockClient)
		mockUC := &mocks.TripUseCaseMock{
			CreateHikePollFunc: func(ctx context.Context, guildID types.GuildID, req *model.TripRequest) (*model.HikePoll, error) {
				return nil, goerr.New("no poll channel", goerr.T(model.ErrTagMissingPrerequisiteChannel))
			},
		}
		handler := newHandler(mockUC, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDHikeModal, validFields)))

		content := waitForEdit(t, edits)
		gt.S(t, content).Contains("“hikes”")
		gt.S(t, content).Contains("create one first")
	})
}

func TestHandleBackpackSubmission(t *testing.T) {
	ctx := context.Background()

	validFields := map[string]string{
		discordSvc.FieldBackpackLocation: "Mount Rainier",
		discordSvc.FieldBackpackDuration: "3 days 2 nights",
		discordSvc.FieldBackpackDates:    "07/10 – 07/13",
		discordSvc.FieldBackpackSpots:    "5",
	}

	t.Run("Defers then provisions the trip", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		edits := editRecorder(mockClient)
		mockUC := &mocks.TripUseCaseMock{
			CreateBackpackTripFunc: func(ctx context.Context, guildID types.GuildID, organizer types.UserID, originChannel types.ChannelID, req *model.TripRequest) (*model.ProvisionedResourceSet, error) {
				return &model.ProvisionedResourceSet{
					CategoryID:  "C-CATEGORY",
					RoleID:      "R-TRIP",
					RoleName:    "trip-mount-rainier-07-10-07-13",
					ChannelID:   "C-TRIP",
					ChannelName: "backpack-mount-rainier-07-10-07-13",
				}, nil
			},
		}
		handler := newHandler(mockUC, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDBackpackModal, validFields)))

		content := waitForEdit(t, edits)
		gt.S(t, content).Contains("<#C-TRIP>")
		gt.S(t, content).Contains("<@&R-TRIP>")

		calls := mockUC.CreateBackpackTripCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, types.GuildID("G-TRAILHEAD"), calls[0].GuildID)
		gt.Equal(t, types.UserID("U-ORGANIZER"), calls[0].Organizer)
		gt.Equal(t, types.ChannelID("C-ORIGIN"), calls[0].OriginChannel)
		gt.Equal(t, "Mount Rainier", calls[0].Req.Location)
		gt.Equal(t, "5", calls[0].Req.SpotCount)
	})

	t.Run("Provisioning failure yields a stage message", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		edits := editRecorder(mockClient)
		mockUC := &mocks.TripUseCaseMock{
			CreateBackpackTripFunc: func(ctx context.Context, guildID types.GuildID, organizer types.UserID, originChannel types.ChannelID, req *model.TripRequest) (*model.ProvisionedResourceSet, error) {
				return nil, goerr.New("channel limit", goerr.T(model.ErrTagChannelCreationFailed))
			},
		}
		handler := newHandler(mockUC, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDBackpackModal, validFields)))

		content := waitForEdit(t, edits)
		gt.S(t, content).Contains("trip role has been removed")
	})

	t.Run("Missing required field replies without deferring", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{
			RespondInteractionFunc: func(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				return nil
			},
		}
		mockUC := &mocks.TripUseCaseMock{}
		handler := newHandler(mockUC, mockClient)

		fields := map[string]string{discordSvc.FieldBackpackLocation: "Mount Rainier"}
		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent(discordSvc.CustomIDBackpackModal, fields)))

		responds := mockClient.RespondInteractionCalls()
		gt.Equal(t, 1, len(responds))
		gt.S(t, responds[0].Resp.Data.Content).Contains("missing required fields")
		gt.Equal(t, 0, len(mockUC.CreateBackpackTripCalls()))
	})
}

func TestHandleUnknownInteractions(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown modal is ignored", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		gt.NoError(t, handler.HandleInteractionCreate(ctx, modalEvent("other_modal", nil)))
		gt.Equal(t, 0, len(mockClient.RespondInteractionCalls()))
	})

	t.Run("Ping interaction is ignored", func(t *testing.T) {
		mockClient := &mocks.DiscordClientMock{}
		handler := newHandler(&mocks.TripUseCaseMock{}, mockClient)

		event := &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing},
		}
		gt.NoError(t, handler.HandleInteractionCreate(ctx, event))
		gt.Equal(t, 0, len(mockClient.RespondInteractionCalls()))
	})
}
