// Package platform adapts the engine-free game loop to Ebitengine: it
// polls input, keeps the virtual-resolution viewport fitted to the window
// and blits the offscreen world image.
package platform

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/coingrab/internal/application/game"
	"github.com/younwookim/coingrab/internal/application/replay"
	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
	"github.com/younwookim/coingrab/internal/infrastructure/screen"
	"github.com/younwookim/coingrab/internal/render"
)

var colorLetterbox = color.RGBA{0, 0, 0, 255}

// Options configures the Ebitengine adapter.
type Options struct {
	// RecordPath, when set, records every frame's input and saves it on
	// F5 and on exit.
	RecordPath string
}

// Game implements ebiten.Game around a game.Session.
type Game struct {
	session  *game.Session
	viewport *render.Viewport
	poller   *InputPoller
	fonts    *screen.Fonts
	logger   *log.Logger

	world   *ebiten.Image
	surface *screen.Surface

	recorder   *replay.Recorder
	recordPath string

	start time.Time
	clock func() time.Duration
}

// New creates the adapter. Fonts are loaded here so a broken font fails
// before the window opens.
func New(session *game.Session, cfg *config.GameConfig, opts Options, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	fonts, err := screen.LoadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:    session,
		viewport:   render.NewViewport(cfg.World.Width, cfg.World.Height),
		poller:     NewInputPoller(),
		fonts:      fonts,
		logger:     logger,
		recordPath: opts.RecordPath,
		start:      time.Now(),
	}
	g.clock = func() time.Duration { return time.Since(g.start) }

	if opts.RecordPath != "" {
		g.recorder = replay.NewRecorder(session.Seed, cfg)
		g.recorder.SetStart(session.Current().String())
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", session.Seed)
	}
	return g, nil
}

// Update drives one frame of the loop (implements ebiten.Game).
// With TPS synced to FPS this runs once per rendered frame.
func (g *Game) Update() error {
	events := g.poller.Poll(g.viewport)
	now := g.clock()

	if g.recorder != nil {
		if pressed(events, system.KeyF5) {
			g.SaveRecording()
		}
		g.recorder.RecordFrame(now, events)
	}

	g.session.Apply(events)
	_, err := g.session.Frame(now)
	return err
}

// Draw renders the world offscreen and scales it into the window
// (implements ebiten.Game).
func (g *Game) Draw(dst *ebiten.Image) {
	if !g.viewport.Visible() {
		return
	}
	if g.world == nil {
		g.world = ebiten.NewImage(int(g.viewport.VirtualW), int(g.viewport.VirtualH))
		g.surface = screen.New(g.world, g.fonts)
	}

	g.session.Draw(g.surface)

	dst.Fill(colorLetterbox)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.viewport.Scale(), g.viewport.Scale())
	op.GeoM.Translate(g.viewport.Offset())
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.world, op)
}

// Layout keeps the screen at window size and refits the viewport
// (implements ebiten.Game).
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SaveRecording writes the recording so far.
func (g *Game) SaveRecording() {
	if g.recorder == nil {
		return
	}

	filename := g.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		g.logger.Error("failed to save recording", "err", err)
		return
	}
	g.logger.Info("recording saved", "path", filename, "frames", g.recorder.FrameCount())
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, cfg *config.GameConfig) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g.session.SetStatus(NewTitleStatus(cfg.Window.Title))

	err := ebiten.RunGame(g)
	g.SaveRecording()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func pressed(events []system.Event, key system.Key) bool {
	for _, ev := range events {
		if ev.Kind == system.EventKeyDown && ev.Key == key {
			return true
		}
	}
	return false
}
