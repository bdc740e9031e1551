package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trailops/tripbot/pkg/cli/config"
	controller "github.com/trailops/tripbot/pkg/controller/discord"
	"github.com/trailops/tripbot/pkg/domain/types"
	discordSvc "github.com/trailops/tripbot/pkg/service/discord"
	"github.com/trailops/tripbot/pkg/usecase"
	"github.com/trailops/tripbot/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		discordCfg config.Discord
		tripCfg    config.Trip
	)

	flags := joinFlags(
		discordCfg.Flags(),
		tripCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Connect to the Discord gateway and handle trip interactions",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tripbot",
				slog.Any("discord", discordCfg),
				slog.Any("trip", tripCfg),
			)

			session, err := discordCfg.Configure()
			if err != nil {
				return err
			}

			client := discordSvc.New(session)
			tripUC := usecase.NewTrip(client, usecase.NewTripConfig(
				usecase.WithPollChannelName(tripCfg.PollChannel),
				usecase.WithCategoryName(tripCfg.CategoryName),
			))
			handler := controller.NewHandler(tripUC, client, tripCfg.PollChannel, tripCfg.CategoryName)

			session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
				logger.Info("Discord gateway ready",
					slog.String("user", r.User.Username),
				)
			})

			session.AddHandler(func(_ *discordgo.Session, event *discordgo.InteractionCreate) {
				// Each event gets its own request-scoped logger; the event
				// outlives the gateway dispatch, so it is not bound to ctx.
				hctx := ctxlog.With(context.Background(),
					logger.With("request_id", types.NewRequestID().String()),
				)
				if err := handler.HandleInteractionCreate(hctx, event); err != nil {
					apperr.Handle(hctx, err)
				}
			})

			if err := session.Open(); err != nil {
				return goerr.Wrap(err, "failed to open Discord gateway connection")
			}

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			if err := session.Close(); err != nil {
				return goerr.Wrap(err, "failed to close Discord gateway connection")
			}

			logger.Info("Shutdown complete")
			return nil
		},
	}
}
