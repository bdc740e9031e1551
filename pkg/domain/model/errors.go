package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classify fatal trip-creation failures. Each tag maps to one
// user-visible message; anything not carrying a tag is reported generically.
// Best-effort failures never carry a tag and never reach the user.
var (
	// ErrTagMissingPrerequisiteChannel: hike path, the fixed poll channel
	// does not exist. Recoverable by creating the channel.
	ErrTagMissingPrerequisiteChannel = goerr.NewTag("missing_prerequisite_channel")

	// ErrTagCategoryUnavailable: the shared trip category could not be found
	// or created. No other resources are touched.
	ErrTagCategoryUnavailable = goerr.NewTag("category_unavailable")

	// ErrTagRoleCreationFailed: the per-trip role could not be created.
	ErrTagRoleCreationFailed = goerr.NewTag("role_creation_failed")

	// ErrTagChannelCreationFailed: the per-trip channel could not be created.
	// The already-created role is compensated with a best-effort delete.
	ErrTagChannelCreationFailed = goerr.NewTag("channel_creation_failed")
)
