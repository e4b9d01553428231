package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jtestard/go-pingpong/config"
	"github.com/jtestard/go-pingpong/display"
	"github.com/jtestard/go-pingpong/pong"
	"github.com/jtestard/go-pingpong/remote"
)

var CLI struct {
	Configs []string `help:"Configuration files, applied in order." name:"config" type:"existingfile"`
	Debug   bool     `help:"Whether to enable debug logging."`
	Listen  string   `help:"Serve the websocket remote on this address."`
	ShowTPS bool     `help:"Print the current TPS in the corner." name:"show-tps"`
}

// Game adapts the driver to the ebiten host loop
type Game struct {
	driver  *pong.Driver
	canvas  *display.Canvas
	showTPS bool
}

// Update runs one tick of the game
func (g *Game) Update(screen *ebiten.Image) error {
	g.canvas.SetScreen(screen)
	g.driver.Tick(g.canvas)

	if g.showTPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
	}

	return nil
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pong.ScreenWidth, pong.ScreenHeight
}

func run(cfg *config.Config) error {
	restartKey := strings.ToUpper(cfg.Keys.Restart)

	face, err := pong.LoadFont(cfg.Font.Size, cfg.Font.DPI)
	if err != nil {
		return err
	}

	keyboard, err := display.NewKeyboard(cfg.Keys.Up, cfg.Keys.Down, cfg.Keys.Restart)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	canvas, err := display.NewCanvas(log.Logger)
	if err != nil {
		return err
	}

	sources := pong.MultiSource{keyboard}
	var observers []pong.Observer

	if cfg.Remote.Enabled {
		srv := remote.New(log.Logger)
		defer srv.Close()

		sources = append(sources, srv)
		observers = append(observers, srv)

		go func() {
			if err := srv.ListenAndServe(cfg.Remote.Listen); err != nil {
				log.Error().Err(err).Msg("websocket server stopped")
			}
		}()
	}

	g := &Game{
		driver: pong.NewDriver(
			sources,
			pong.NewInputHandler(log.Logger),
			pong.NewSimulator(log.Logger, restartKey),
			pong.NewRenderer(face, restartKey),
			observers...,
		),
		canvas:  canvas,
		showTPS: cfg.ShowTPS,
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(
		int(float64(pong.ScreenWidth)*cfg.Window.Scale),
		int(float64(pong.ScreenHeight)*cfg.Window.Scale),
	)
	ebiten.SetMaxTPS(cfg.TPS)
	ebiten.SetRunnableOnUnfocused(true)

	log.Info().Msg("starting the game")
	return ebiten.RunGame(g)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("pingpong"),
		kong.Description("a two-paddle ball game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	cfg, err := config.Load(CLI.Configs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if CLI.Listen != "" {
		cfg.Remote.Enabled = true
		cfg.Remote.Listen = CLI.Listen
	}
	if CLI.ShowTPS {
		cfg.ShowTPS = true
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
