package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "github.com/LeDeathAmongst/vrt-cogs/internal/commands"

	"github.com/LeDeathAmongst/vrt-cogs/internal/config"
	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
	"github.com/LeDeathAmongst/vrt-cogs/internal/discord"
	"github.com/LeDeathAmongst/vrt-cogs/internal/logging"
	"github.com/LeDeathAmongst/vrt-cogs/internal/storage"
	v "github.com/LeDeathAmongst/vrt-cogs/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)

	log.Info().Str("version", v.AppVersion).Msgf("starting %s bot", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	cogs := core.BuildCogs()
	bot := discord.NewBot(cfg, store, cogs)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("discord bot error")
		}
		cancel()
	case <-ctx.Done():
	}

	log.Info().Msg("discord bot exited cleanly")
}
