package config

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Discord holds Discord configuration
type Discord struct {
	Token   string
	AppID   string
	GuildID string
}

// Flags returns CLI flags for Discord configuration
func (d *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Sources:     cli.EnvVars("TRIPBOT_DISCORD_TOKEN"),
			Destination: &d.Token,
		},
		&cli.StringFlag{
			Name:        "discord-app-id",
			Usage:       "Discord application ID (required for command registration)",
			Category:    "Discord",
			Sources:     cli.EnvVars("TRIPBOT_DISCORD_APP_ID"),
			Destination: &d.AppID,
		},
		&cli.StringFlag{
			Name:        "discord-guild-id",
			Usage:       "Discord guild ID (required for command registration)",
			Category:    "Discord",
			Sources:     cli.EnvVars("TRIPBOT_DISCORD_GUILD_ID"),
			Destination: &d.GuildID,
		},
	}
}

// Configure creates a Discord session from the configuration. The session is
// not yet connected; callers open the gateway when they need events.
func (d *Discord) Configure() (*discordgo.Session, error) {
	if !d.IsConfigured() {
		return nil, goerr.New("Discord bot token is required. Please provide TRIPBOT_DISCORD_TOKEN")
	}

	session, err := discordgo.New("Bot " + d.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Discord session")
	}

	// Interactions only need guild state
	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}

// IsConfigured checks if Discord is configured for basic operations
func (d *Discord) IsConfigured() bool {
	return d.Token != ""
}

// LogValue returns structured log value
func (d Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", d.Token != ""),
		slog.String("app_id", d.AppID),
		slog.String("guild_id", d.GuildID),
	)
}
