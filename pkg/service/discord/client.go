package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/interfaces"
	"github.com/trailops/tripbot/pkg/domain/types"
)

// Service provides Discord API capabilities over a gateway session
type Service struct {
	session *discordgo.Session
}

var _ interfaces.DiscordClient = (*Service)(nil)

// New creates a new Discord service wrapping an existing session
func New(session *discordgo.Session) *Service {
	return &Service{
		session: session,
	}
}

// GuildChannels lists all channels of a guild, categories included
func (s *Service) GuildChannels(ctx context.Context, guildID types.GuildID) ([]*discordgo.Channel, error) {
	channels, err := s.session.GuildChannels(guildID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list guild channels", goerr.V("guildID", guildID))
	}
	return channels, nil
}

// CreateChannel creates a guild channel with the given settings
func (s *Service) CreateChannel(ctx context.Context, guildID types.GuildID, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	channel, err := s.session.GuildChannelCreateComplex(guildID.String(), data, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create guild channel",
			goerr.V("guildID", guildID),
			goerr.V("name", data.Name),
		)
	}
	return channel, nil
}

// CreateRole creates a guild role
func (s *Service) CreateRole(ctx context.Context, guildID types.GuildID, params *discordgo.RoleParams) (*discordgo.Role, error) {
	role, err := s.session.GuildRoleCreate(guildID.String(), params, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create guild role",
			goerr.V("guildID", guildID),
			goerr.V("name", params.Name),
		)
	}
	return role, nil
}

// DeleteRole deletes a guild role
func (s *Service) DeleteRole(ctx context.Context, guildID types.GuildID, roleID types.RoleID) error {
	if err := s.session.GuildRoleDelete(guildID.String(), roleID.String(), discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to delete guild role",
			goerr.V("guildID", guildID),
			goerr.V("roleID", roleID),
		)
	}
	return nil
}

// AddMemberRole assigns a role to a guild member
func (s *Service) AddMemberRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) error {
	if err := s.session.GuildMemberRoleAdd(guildID.String(), userID.String(), roleID.String(), discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to add role to member",
			goerr.V("guildID", guildID),
			goerr.V("userID", userID),
			goerr.V("roleID", roleID),
		)
	}
	return nil
}

// PostMessage sends a plain text message to a channel
func (s *Service) PostMessage(ctx context.Context, channelID types.ChannelID, content string) (*discordgo.Message, error) {
	msg, err := s.session.ChannelMessageSend(channelID.String(), content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to post message", goerr.V("channelID", channelID))
	}
	return msg, nil
}

// AddReaction attaches an emoji reaction to a message
func (s *Service) AddReaction(ctx context.Context, channelID types.ChannelID, messageID types.MessageID, emoji string) error {
	if err := s.session.MessageReactionAdd(channelID.String(), messageID.String(), emoji, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to add reaction",
			goerr.V("channelID", channelID),
			goerr.V("messageID", messageID),
			goerr.V("emoji", emoji),
		)
	}
	return nil
}

// RespondInteraction sends the one permitted acknowledgment for an interaction
func (s *Service) RespondInteraction(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	if err := s.session.InteractionRespond(interaction, resp, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to respond to interaction", goerr.V("type", resp.Type))
	}
	return nil
}

// EditInteractionResponse finalizes a previously deferred acknowledgment
func (s *Service) EditInteractionResponse(ctx context.Context, interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	msg, err := s.session.InteractionResponseEdit(interaction, edit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to edit interaction response")
	}
	return msg, nil
}
