package interfaces

//go:generate moq -out mocks/discord_mock.go -pkg mocks . DiscordClient
//go:generate moq -out mocks/usecase_mock.go -pkg mocks . TripUseCase

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
)

// DiscordClient defines the outbound Discord calls the bot performs.
// Implementations forward the context to the underlying REST calls so that
// in-flight requests honor cancellation.
type DiscordClient interface {
	// Guild resource reads
	GuildChannels(ctx context.Context, guildID types.GuildID) ([]*discordgo.Channel, error)

	// Guild resource creation/removal
	CreateChannel(ctx context.Context, guildID types.GuildID, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)
	CreateRole(ctx context.Context, guildID types.GuildID, params *discordgo.RoleParams) (*discordgo.Role, error)
	DeleteRole(ctx context.Context, guildID types.GuildID, roleID types.RoleID) error
	AddMemberRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) error

	// Messaging
	PostMessage(ctx context.Context, channelID types.ChannelID, content string) (*discordgo.Message, error)
	AddReaction(ctx context.Context, channelID types.ChannelID, messageID types.MessageID, emoji string) error

	// Interaction acknowledgment. Each interaction event permits exactly one
	// RespondInteraction call; EditInteractionResponse finalizes a deferred one.
	RespondInteraction(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	EditInteractionResponse(ctx context.Context, interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)
}

// TripUseCase defines the trip-creation operations invoked by the
// interaction controller
type TripUseCase interface {
	CreateHikePoll(ctx context.Context, guildID types.GuildID, req *model.TripRequest) (*model.HikePoll, error)
	CreateBackpackTrip(ctx context.Context, guildID types.GuildID, organizer types.UserID, originChannel types.ChannelID, req *model.TripRequest) (*model.ProvisionedResourceSet, error)
}
