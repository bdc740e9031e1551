package model

import (
	"github.com/trailops/tripbot/pkg/domain/types"
)

// Name prefixes for per-trip guild resources
const (
	roleNamePrefix    = "trip-"
	channelNamePrefix = "backpack-"
)

// TripRoleName returns the name of the per-trip role
func TripRoleName(slug types.TripSlug) string {
	return roleNamePrefix + slug.String()
}

// TripChannelName returns the name of the per-trip text channel
func TripChannelName(slug types.TripSlug) string {
	return channelNamePrefix + slug.String()
}

// ProvisionedResourceSet holds the guild resources created for one backpack
// trip. The shared category is looked up or created once; role and channel
// are per trip.
type ProvisionedResourceSet struct {
	CategoryID  types.ChannelID
	RoleID      types.RoleID
	RoleName    string
	ChannelID   types.ChannelID
	ChannelName string
}

// HikePoll identifies the poll message posted for a hike trip
type HikePoll struct {
	ChannelID types.ChannelID
	MessageID types.MessageID
}
