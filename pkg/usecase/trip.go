package usecase

import (
	"github.com/trailops/tripbot/pkg/domain/interfaces"
	"golang.org/x/sync/singleflight"
)

// TripConfig holds configuration for the Trip use case
type TripConfig struct {
	pollChannelName string
	categoryName    string
}

// TripOption is a functional option for configuring Trip
type TripOption func(*TripConfig)

// WithPollChannelName sets the fixed channel name hike polls are posted to
func WithPollChannelName(name string) TripOption {
	return func(c *TripConfig) {
		c.pollChannelName = name
	}
}

// WithCategoryName sets the name of the shared category backpack trip
// channels are created under
func WithCategoryName(name string) TripOption {
	return func(c *TripConfig) {
		c.categoryName = name
	}
}

// NewTripConfig creates a new TripConfig with default values and optional settings
func NewTripConfig(opts ...TripOption) *TripConfig {
	config := &TripConfig{
		pollChannelName: "hikes",
		categoryName:    "Backpacking Trips",
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// Trip implements the TripUseCase interface. It is stateless apart from the
// single-flight guard that serializes find-or-create of the shared category.
type Trip struct {
	client         interfaces.DiscordClient
	config         *TripConfig
	categoryFlight singleflight.Group
}

var _ interfaces.TripUseCase = (*Trip)(nil)

// NewTrip creates a new Trip use case instance
func NewTrip(client interfaces.DiscordClient, config *TripConfig) *Trip {
	if config == nil {
		config = NewTripConfig()
	}
	return &Trip{
		client: client,
		config: config,
	}
}

// orNA substitutes "N/A" for empty optional form values
func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
