package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "lexibot/internal/command/define"
	_ "lexibot/internal/command/thesaurus"

	"lexibot/internal/config"
	"lexibot/internal/dictionary"
	"lexibot/internal/discord"
	"lexibot/internal/logger"
	"lexibot/internal/suggest"
	"lexibot/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; a missing token lands here and must exit non-zero.
		fmt.Fprintf(os.Stderr, "%s: %v\n", version.AppName, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	log.Info().Str("version", version.Version()).Msgf("starting %s", version.AppName)

	index := suggest.New(cfg.Suggest.MaxDistance)
	if cfg.Suggest.WordListPath != "" {
		index, err = suggest.Load(cfg.Suggest.WordListPath, cfg.Suggest.MaxDistance)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load suggestion word list")
		}
	}
	log.Info().Int("words", index.Len()).Msg("suggestion index ready")

	dict := dictionary.New(cfg.API.DictionaryURL, cfg.API.Timeout)
	bot := discord.New(cfg, log, dict, index)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("discord bot error")
			os.Exit(1)
		}
	}

	log.Info().Msg("discord bot exited cleanly")
}
