// cmd/game/main.go
package main

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"go-reef-defense/internal/app"
	"go-reef-defense/internal/assets"
	"go-reef-defense/internal/audio"
	"go-reef-defense/internal/config"
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/logging"
	"go-reef-defense/internal/render"
	"go-reef-defense/internal/state"
	"go-reef-defense/internal/ui"
)

const titleFontSize = 40

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := pflag.String("config", ".", "directory holding "+config.ConfigName)
	seed := pflag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	pflag.Parse()

	settings, err := config.Load(*configDir)
	logging.Setup(settings.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
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
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	sounds := audio.NewSoundManager(settings.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio disabled")
	}
	defer sounds.Cleanup()
	sounds.Subscribe(game.EventDispatcher)

	images := assets.NewImageManager(config.ImagesDir)
	preloadSprites(images)

	ctx := state.NewContext(game,
		ui.LoadFace(config.FontPath, config.FontSize),
		ui.LoadFace(config.FontPath, titleFontSize),
		render.NewRenderSystem(game.ECS, images))

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Error().Err(err).Msg("Game stopped")
	}
}

// preloadSprites reads every sprite the libraries name so missing files are
// reported once at start.
func preloadSprites(images *assets.ImageManager) {
	sizes := make(map[string]int)
	fallback := make(map[string]color.Color)
	add := func(v defs.Visuals, size float64) {
		sizes[v.Sprite] = int(size)
		fallback[v.Sprite] = v.Color
	}
	for _, a := range defs.ActorLibrary {
		add(a.Visuals, a.Size)
		add(a.Weapon.Visuals, a.Weapon.ShotSize)
	}
	for _, e := range defs.EnemyLibrary {
		add(e.Visuals, e.Size)
	}
	images.Preload(sizes, fallback)
}
