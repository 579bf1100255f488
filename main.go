package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/airfighter/audio"
	"github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/fonts"
	"github.com/automoto/airfighter/input"
	"github.com/automoto/airfighter/logging"
	"github.com/automoto/airfighter/persistence"
	"github.com/automoto/airfighter/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const appName = "airfighter"

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory holding an optional airfighter.json")
	seed := flag.Uint64("seed", 0, "fixed run seed, 0 for a fresh one per run")
	difficulty := flag.String("difficulty", "", "beginner, normal or expert")
	skipMenu := flag.Bool("play", false, "skip the menu and start a run")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		return err
	}
	settings := config.CurrentSettings()

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := fonts.LoadAll(settings.FontFile); err != nil {
		return err
	}

	saves := persistence.Open(appName, logger)
	prefs := saves.LoadPrefs(persistence.DefaultPrefs(settings))
	if *difficulty != "" {
		d, ok := config.ParseDifficulty(*difficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", *difficulty)
		}
		prefs.Difficulty = d.String()
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn().Err(err).Msg("Sound disabled")
	}
	defer player.Close()
	player.SetEnabled(prefs.SFX)

	session := &scenes.Session{
		Logger: logger,
		Input:  &input.State{},
		Sound:  player,
		Saves:  saves,
		Prefs:  prefs,
		Seed:   settings.Seed,
	}

	g := &Game{}
	if *skipMenu {
		g.scene = scenes.NewBattleScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Air Fighter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen || prefs.Fullscreen)

	logger.Info().
		Str("difficulty", prefs.Difficulty).
		Str("language", prefs.Language).
		Msg("Starting")

	return ebiten.RunGame(g)
}

func newLogger(s config.Settings) (zerolog.Logger, func(), error) {
	if s.LogFile == "" {
		return logging.New(s.LogLevel, os.Stderr), func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("error opening log file: %w", err)
	}
	return logging.Multi(s.LogLevel, os.Stderr, f), func() { _ = f.Close() }, nil
}
