// cmd/reef-term/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"go-reef-defense/internal/app"
	"go-reef-defense/internal/audio"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/logging"
	"go-reef-defense/internal/termui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reef-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := pflag.String("config", ".", "directory holding "+config.ConfigName)
	seed := pflag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	logPath := pflag.String("log", "reef-term.log", "log file; the terminal belongs to the game")
	pflag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	settings, err := config.Load(*configDir)
	logging.Setup(settings.LogLevel, logFile)
	if err != nil {
		return err
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.ShopCatalog != "" {
		if err := defs.LoadItemDefinitions(settings.ShopCatalog); err != nil {
			log.Warn().Err(err).Msg("Keeping built-in shop catalogue")
		}
	}

	game, err := app.NewGame(settings)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	sounds := audio.NewSoundManager(settings.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio disabled")
	}
	defer sounds.Cleanup()
	sounds.Subscribe(game.EventDispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := termui.New(screen, game).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Info().Msg("Bye")
	return nil
}
