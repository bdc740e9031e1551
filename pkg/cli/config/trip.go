package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Trip holds trip-workflow configuration
type Trip struct {
	PollChannel  string
	CategoryName string
}

// Flags returns CLI flags for Trip configuration
func (t *Trip) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "trip-poll-channel",
			Usage:       "Name of the channel hike polls are posted to",
			Category:    "Trip",
			Value:       "hikes",
			Sources:     cli.EnvVars("TRIPBOT_POLL_CHANNEL"),
			Destination: &t.PollChannel,
		},
		&cli.StringFlag{
			Name:        "trip-category-name",
			Usage:       "Name of the shared category for backpack trip channels",
			Category:    "Trip",
			Value:       "Backpacking Trips",
			Sources:     cli.EnvVars("TRIPBOT_CATEGORY_NAME"),
			Destination: &t.CategoryName,
		},
	}
}

// LogValue returns structured log value
func (t Trip) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("poll_channel", t.PollChannel),
		slog.String("category_name", t.CategoryName),
	)
}
