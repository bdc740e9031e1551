package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
	"github.com/trailops/tripbot/pkg/utils/apperr"
)

const (
	backpackWelcomeFormat = "🏕️ **Welcome to the %s trip!**\n• **Duration:** %s\n• **Dates:** %s\n• **# of Spots:** %s\n• **Organizer:** <@%s>"

	backpackAnnouncementFormat = "**New Backpack Trip Request**\n• **Location:** %s\n• **Duration:** %s\n• **Dates:** %s\n• **# of Spots:** %s\nReact with 🎒 or head over to <#%s> if you want in!"
)

// CreateBackpackTrip provisions the guild resources for a backpack trip and
// posts the welcome and announcement messages. Provisioning failures abort
// with no per-trip resources left behind; notification failures after
// provisioning succeeded are logged and never change the result.
func (u *Trip) CreateBackpackTrip(ctx context.Context, guildID types.GuildID, organizer types.UserID, originChannel types.ChannelID, req *model.TripRequest) (*model.ProvisionedResourceSet, error) {
	if req.Category != model.TripCategoryBackpack {
		return nil, goerr.New("trip request is not a backpack trip", goerr.V("category", req.Category))
	}

	slug := req.Slug()
	ctxlog.From(ctx).Info("Creating backpack trip",
		"slug", slug,
		"location", req.Location,
		"organizer", organizer,
	)

	resources, err := u.provisionBackpackResources(ctx, guildID, organizer, slug)
	if err != nil {
		return nil, err
	}

	u.postBackpackNotifications(ctx, organizer, originChannel, req, resources)

	return resources, nil
}

// postBackpackNotifications posts the welcome message in the trip channel and
// the public announcement in the origin channel. Both are best-effort and
// independently logged.
func (u *Trip) postBackpackNotifications(ctx context.Context, organizer types.UserID, originChannel types.ChannelID, req *model.TripRequest, resources *model.ProvisionedResourceSet) {
	welcome := fmt.Sprintf(backpackWelcomeFormat,
		req.Location, req.Duration, req.DateRange, orNA(req.SpotCount), organizer)
	if _, err := u.client.PostMessage(ctx, resources.ChannelID, welcome); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to post welcome message"))
	}

	announcement := fmt.Sprintf(backpackAnnouncementFormat,
		req.Location, req.Duration, req.DateRange, orNA(req.SpotCount), resources.ChannelID)
	msg, err := u.client.PostMessage(ctx, originChannel, announcement)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to post trip announcement"))
		return
	}

	if err := u.client.AddReaction(ctx, originChannel, types.MessageID(msg.ID), "🎒"); err != nil {
		apperr.Handle(ctx, err)
	}
}
