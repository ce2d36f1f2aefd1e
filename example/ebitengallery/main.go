// SPDX-License-Identifier: Unlicense OR MIT

package main

// An Ebitengine window showing the spinners of a preset file. Press O
// to open another preset file, Escape to quit.

import (
	"errors"
	"flag"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"gioui.org/f32"
	"gioui.org/spinner"
	"gioui.org/spinner/ebitendraw"
	"gioui.org/spinner/internal/logger"
	"gioui.org/spinner/preset"
)

const (
	windowWidth  = 720
	windowHeight = 480
	margin       = 12
)

var (
	presetFile = flag.String("presets", "", "preset file; defaults to the demo catalog")
	verbose    = flag.Bool("v", false, "debug logging")
)

var background = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

type game struct {
	log      zerolog.Logger
	file     *preset.File
	configs  []spinner.Config
	surface  ebitendraw.Surface
	flow     spinner.Flow
	ctx      *spinner.Context
	width    int
	status   string
	selected chan string
}

func newGame(file *preset.File, log zerolog.Logger) (*game, error) {
	g := &game{log: log, selected: make(chan string, 1)}
	g.surface.AntiAlias = true
	g.flow.Origin = f32.Pt(margin, margin)
	g.flow.Spacing = f32.Pt(margin, margin)
	g.ctx = spinner.NewContext(&g.surface, &g.flow, spinner.SinceClock(time.Now()), nil)
	if err := g.use(file); err != nil {
		return nil, err
	}
	return g, nil
}

// use replaces the displayed spinners and their state.
func (g *game) use(file *preset.File) error {
	configs, err := file.Configs()
	if err != nil {
		return err
	}
	g.file, g.configs = file, configs
	g.ctx.State.Reset()
	g.status = ""
	return nil
}

// openDialog asks for a preset file without blocking the game loop.
func (g *game) openDialog() {
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Open Preset File"),
			zenity.FileFilters{{
				Name:     "Presets",
				Patterns: []string{"*.yaml", "*.yml"},
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				g.log.Error().Err(err).Msg("file dialog")
			}
			return
		}
		g.selected <- path
	}()
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openDialog()
	}
	select {
	case path := <-g.selected:
		file, err := preset.Load(path, g.log)
		if err == nil {
			err = g.use(file)
		}
		if err != nil {
			g.status = err.Error()
		}
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.surface.Target = screen
	g.flow.Width = float32(g.width - margin)
	g.flow.Viewport = screen.Bounds()
	g.flow.Reset()
	for i, c := range g.configs {
		spinner.Invoke(g.ctx, c.Kind, g.file.Spinners[i].Label, c)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, margin, screen.Bounds().Dy()-2*margin)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	level := "info"
	if *verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		panic(err)
	}
	file := preset.DemoFile()
	if *presetFile != "" {
		if file, err = preset.Load(*presetFile, log); err != nil {
			log.Fatal().Err(err).Msg("loading presets")
		}
	}
	g, err := newGame(file, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading presets")
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Spinners - O: open presets, Esc: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game")
	}
}
