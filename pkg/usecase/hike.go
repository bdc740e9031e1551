package usecase

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
	"github.com/trailops/tripbot/pkg/utils/apperr"
)

const hikePollFormat = " **Hiking at %s on %s**\nReact with ✅ if you can join, ❌ if you cannot.\n• Distance: %s"

// CreateHikePoll posts a hike poll with yes/no reaction affordances to the
// fixed poll channel. The channel must already exist; if it does not, the
// request fails without touching any guild state.
func (u *Trip) CreateHikePoll(ctx context.Context, guildID types.GuildID, req *model.TripRequest) (*model.HikePoll, error) {
	if req.Category != model.TripCategoryHike {
		return nil, goerr.New("trip request is not a hike", goerr.V("category", req.Category))
	}

	channels, err := u.client.GuildChannels(ctx, guildID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list channels for poll channel lookup")
	}

	pollChannel := findTextChannel(channels, u.config.pollChannelName)
	if pollChannel == nil {
		return nil, goerr.New("poll channel not found",
			goerr.T(model.ErrTagMissingPrerequisiteChannel),
			goerr.V("channel", u.config.pollChannelName),
		)
	}

	pollText := fmt.Sprintf(hikePollFormat, req.Location, req.Date, orNA(req.Distance))
	msg, err := u.client.PostMessage(ctx, types.ChannelID(pollChannel.ID), pollText)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to post hike poll",
			goerr.V("channelID", pollChannel.ID),
		)
	}

	// The poll text is the primary artifact; reaction failures must not undo it
	for _, emoji := range []string{"✅", "❌"} {
		if err := u.client.AddReaction(ctx, types.ChannelID(pollChannel.ID), types.MessageID(msg.ID), emoji); err != nil {
			apperr.Handle(ctx, err)
		}
	}

	ctxlog.From(ctx).Info("Posted hike poll",
		"location", req.Location,
		"date", req.Date,
		"channelID", pollChannel.ID,
		"messageID", msg.ID,
	)

	return &model.HikePoll{
		ChannelID: types.ChannelID(pollChannel.ID),
		MessageID: types.MessageID(msg.ID),
	}, nil
}

// findTextChannel returns the first text channel with the given name, or nil
func findTextChannel(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch
		}
	}
	return nil
}
