package cli

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/cli/config"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
	"github.com/urfave/cli/v3"
)

// cmdRegister performs the one-time registration of the trip command with the
// platform. Kept separate from serve so restarts never re-register commands.
func cmdRegister() *cli.Command {
	var discordCfg config.Discord

	return &cli.Command{
		Name:  "register",
		Usage: "Register the trip command for a guild",
		Flags: discordCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if discordCfg.AppID == "" || discordCfg.GuildID == "" {
				return goerr.New("Discord app ID and guild ID are required. Please provide TRIPBOT_DISCORD_APP_ID and TRIPBOT_DISCORD_GUILD_ID")
			}

			session, err := discordCfg.Configure()
			if err != nil {
				return err
			}

			commands := []*discordgo.ApplicationCommand{
				{
					Name:        discordSvc.CommandTrip,
					Description: "Begin trip-planning flow",
				},
			}

			registered, err := session.ApplicationCommandBulkOverwrite(
				discordCfg.AppID,
				discordCfg.GuildID,
				commands,
				discordgo.WithContext(ctx),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to register guild commands",
					goerr.V("guildID", discordCfg.GuildID),
				)
			}

			for _, cmd := range registered {
				logger.Info("Registered guild command",
					slog.String("name", cmd.Name),
					slog.String("id", cmd.ID),
				)
			}

			return nil
		},
	}
}
