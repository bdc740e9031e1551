package types

import (
	"github.com/google/uuid"
)

// GuildID represents a Discord guild (server) identifier
type GuildID string

// String returns the string representation
func (id GuildID) String() string {
	return string(id)
}

// EveryoneRoleID returns the identifier of the guild's default @everyone role,
// which Discord defines to be equal to the guild ID.
func (id GuildID) EveryoneRoleID() RoleID {
	return RoleID(id)
}

// ChannelID represents a Discord channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// RoleID represents a Discord role identifier
type RoleID string

// String returns the string representation
func (id RoleID) String() string {
	return string(id)
}

// UserID represents a Discord user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// MessageID represents a Discord message identifier
type MessageID string

// String returns the string representation
func (id MessageID) String() string {
	return string(id)
}

// TripSlug is the resource-name-safe identifier derived from a trip's
// location and date range. It contains only [a-z0-9-].
type TripSlug string

// String returns the string representation
func (s TripSlug) String() string {
	return string(s)
}

// RequestID correlates all log entries produced while handling one
// interaction event
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID
func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}
