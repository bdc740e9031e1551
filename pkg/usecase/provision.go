package usecase

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/domain/model"
	"github.com/trailops/tripbot/pkg/domain/types"
	"github.com/trailops/tripbot/pkg/utils/apperr"
)

// provisionStep is one stage of the resource-provisioning sequence. When a
// later step fails, compensations of completed steps run in reverse order,
// each best-effort.
type provisionStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// provisionBackpackResources creates the guild resources for one backpack
// trip: the shared category (found or created), a per-trip role, and a
// private channel bound to that role. Failure leaves zero newly created
// per-trip resources behind.
func (u *Trip) provisionBackpackResources(ctx context.Context, guildID types.GuildID, organizer types.UserID, slug types.TripSlug) (*model.ProvisionedResourceSet, error) {
	categoryID, err := u.findOrCreateCategory(ctx, guildID)
	if err != nil {
		return nil, goerr.Wrap(err, "trip category unavailable",
			goerr.T(model.ErrTagCategoryUnavailable),
			goerr.V("category", u.config.categoryName),
		)
	}

	resources := &model.ProvisionedResourceSet{
		CategoryID:  categoryID,
		RoleName:    model.TripRoleName(slug),
		ChannelName: model.TripChannelName(slug),
	}

	// The channel's permission overwrites reference the role ID, so the role
	// must be created first. Compensation therefore only ever needs to undo
	// one step back.
	steps := []provisionStep{
		{
			name: "create trip role",
			run: func(ctx context.Context) error {
				noPerms := int64(0)
				role, err := u.client.CreateRole(ctx, guildID, &discordgo.RoleParams{
					Name:        resources.RoleName,
					Permissions: &noPerms,
				})
				if err != nil {
					return goerr.Wrap(err, "failed to create trip role",
						goerr.T(model.ErrTagRoleCreationFailed),
						goerr.V("name", resources.RoleName),
					)
				}
				resources.RoleID = types.RoleID(role.ID)
				return nil
			},
			compensate: func(ctx context.Context) error {
				return u.client.DeleteRole(ctx, guildID, resources.RoleID)
			},
		},
		{
			name: "create trip channel",
			run: func(ctx context.Context) error {
				channel, err := u.client.CreateChannel(ctx, guildID, discordgo.GuildChannelCreateData{
					Name:     resources.ChannelName,
					Type:     discordgo.ChannelTypeGuildText,
					ParentID: categoryID.String(),
					PermissionOverwrites: []*discordgo.PermissionOverwrite{
						{
							ID:   guildID.EveryoneRoleID().String(),
							Type: discordgo.PermissionOverwriteTypeRole,
							Deny: discordgo.PermissionViewChannel,
						},
						{
							ID:    resources.RoleID.String(),
							Type:  discordgo.PermissionOverwriteTypeRole,
							Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
						},
					},
				})
				if err != nil {
					return goerr.Wrap(err, "failed to create trip channel",
						goerr.T(model.ErrTagChannelCreationFailed),
						goerr.V("name", resources.ChannelName),
					)
				}
				resources.ChannelID = types.ChannelID(channel.ID)
				return nil
			},
		},
	}

	if err := runProvisionSteps(ctx, steps); err != nil {
		return nil, err
	}

	// Role assignment is best-effort: the trip resources already exist, the
	// organizer just may need a manual assignment.
	if err := u.client.AddMemberRole(ctx, guildID, organizer, resources.RoleID); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to assign trip role to organizer",
			goerr.V("roleID", resources.RoleID),
			goerr.V("userID", organizer),
		))
	}

	ctxlog.From(ctx).Info("Provisioned backpack trip resources",
		"categoryID", resources.CategoryID,
		"roleID", resources.RoleID,
		"roleName", resources.RoleName,
		"channelID", resources.ChannelID,
		"channelName", resources.ChannelName,
	)

	return resources, nil
}

// runProvisionSteps executes steps in order. On failure at step k it runs the
// compensations of steps k-1..0 in reverse; a failing compensation is logged
// and does not stop the remaining ones.
func runProvisionSteps(ctx context.Context, steps []provisionStep) error {
	for i, step := range steps {
		err := step.run(ctx)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if steps[j].compensate == nil {
				continue
			}
			if cerr := steps[j].compensate(ctx); cerr != nil {
				apperr.Handle(ctx, goerr.Wrap(cerr, "compensation failed",
					goerr.V("step", steps[j].name),
				))
			} else {
				ctxlog.From(ctx).Info("Compensated provisioning step", "step", steps[j].name)
			}
		}

		return goerr.Wrap(err, "provisioning failed", goerr.V("step", step.name))
	}

	return nil
}

// findOrCreateCategory returns the ID of the shared trip category, creating
// it when absent. The lookup and create are collapsed into a single flight
// per guild and category name so two concurrent first trips cannot create
// duplicate categories.
func (u *Trip) findOrCreateCategory(ctx context.Context, guildID types.GuildID) (types.ChannelID, error) {
	key := guildID.String() + "/" + u.config.categoryName

	v, err, _ := u.categoryFlight.Do(key, func() (any, error) {
		channels, err := u.client.GuildChannels(ctx, guildID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list channels for category lookup")
		}

		for _, ch := range channels {
			if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == u.config.categoryName {
				return types.ChannelID(ch.ID), nil
			}
		}

		category, err := u.client.CreateChannel(ctx, guildID, discordgo.GuildChannelCreateData{
			Name: u.config.categoryName,
			Type: discordgo.ChannelTypeGuildCategory,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create category")
		}

		ctxlog.From(ctx).Info("Created shared trip category",
			"name", u.config.categoryName,
			"categoryID", category.ID,
		)
		return types.ChannelID(category.ID), nil
	})
	if err != nil {
		return "", err
	}

	return v.(types.ChannelID), nil
}
