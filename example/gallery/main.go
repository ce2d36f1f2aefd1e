// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio window showing a grid of spinners.

import (
	"flag"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog"

	"gioui.org/spinner"
	"gioui.org/spinner/internal/logger"
	"gioui.org/spinner/preset"
	"gioui.org/spinner/widget"
)

var (
	presetFile = flag.String("presets", "", "preset file; defaults to the demo catalog")
	columns    = flag.Int("columns", 5, "spinners per row")
	verbose    = flag.Bool("v", false, "debug logging")
)

var background = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

type item struct {
	label  string
	config spinner.Config
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
	items, err := loadItems(*presetFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading presets")
	}

	go func() {
		w := app.NewWindow(
			app.Title("Spinners"),
			app.Size(unit.Dp(720), unit.Dp(480)),
		)
		if err := loop(w, items, log); err != nil {
			log.Fatal().Err(err).Msg("window")
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadItems(path string, log zerolog.Logger) ([]item, error) {
	file := preset.DemoFile()
	if path != "" {
		var err error
		if file, err = preset.Load(path, log); err != nil {
			return nil, err
		}
	}
	configs, err := file.Configs()
	if err != nil {
		return nil, err
	}
	items := make([]item, len(configs))
	for i, c := range configs {
		items[i] = item{label: file.Spinners[i].Label, config: c}
	}
	return items, nil
}

func loop(w *app.Window, items []item, log zerolog.Logger) error {
	var (
		ops      op.Ops
		spinners widget.Spinners
	)
	frames := 0
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			log.Debug().Int("frames", frames).Int("state", spinners.State().Len()).Msg("window closed")
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, background)
			grid(gtx, &spinners, items)
			e.Frame(gtx.Ops)
			frames++
		}
	}
	return nil
}

// grid lays out items in rows of the configured number of columns.
func grid(gtx layout.Context, spinners *widget.Spinners, items []item) layout.Dimensions {
	n := max(*columns, 1)
	var rows []layout.FlexChild
	for i := 0; i < len(items); i += n {
		row := items[i:min(i+n, len(items))]
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			cells := make([]layout.FlexChild, len(row))
			for j, it := range row {
				cells[j] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return spinners.LayoutConfig(gtx, it.label, it.config)
					})
				})
			}
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, cells...)
		}))
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
	})
}
