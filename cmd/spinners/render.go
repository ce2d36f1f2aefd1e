// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gioui.org/spinner"
	"gioui.org/spinner/preset"
)

type renderOptions struct {
	kind   string
	label  string
	frames int
	fps    int
	width  int
	bg     string
	out    string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render spinners to an animated GIF or PNG frames",
		Long: `Render the presets, or a single kind with default parameters, to an
animated GIF (--out name.gif) or to numbered PNG frames (--out name.png).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Render a single kind instead of the presets")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Render only the preset with this label")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 60, "Number of frames")
	cmd.Flags().IntVar(&opts.fps, "fps", 30, "Frames per second")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Wrap spinners at this image width; 0 puts them on one row")
	cmd.Flags().StringVar(&opts.bg, "bg", "#202020", "Background color")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, .gif or .png")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	if opts.frames < 1 || opts.fps < 1 {
		return errors.New("render: frames and fps must be positive")
	}
	bg, err := preset.ParseColor(opts.bg)
	if err != nil {
		return fmt.Errorf("render: --bg: %w", err)
	}
	presets, err := selectPresets(root, opts.kind, opts.label)
	if err != nil {
		return err
	}

	s := newScene(presets, opts.width, bg)
	root.log.Debug().
		Int("spinners", len(presets)).
		Int("frames", opts.frames).
		Str("size", s.size.String()).
		Str("out", opts.out).
		Msg("rendering")

	switch ext := strings.ToLower(filepath.Ext(opts.out)); ext {
	case ".gif":
		err = writeGIF(opts.out, s, opts.frames, opts.fps)
	case ".png":
		err = writePNGs(opts.out, s, opts.frames, opts.fps)
	default:
		return fmt.Errorf("render: unsupported output format %q", ext)
	}
	if err != nil {
		root.log.Error().Err(err).Str("out", opts.out).Msg("render failed")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames of %dx%d to %s\n", opts.frames, s.size.X, s.size.Y, opts.out)
	return nil
}

// selectPresets returns the spinners selected by the kind and label
// flags.
func selectPresets(root *rootFlags, kind, label string) ([]namedConfig, error) {
	if kind != "" {
		k, err := spinner.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		if !k.Valid() {
			return nil, fmt.Errorf("spinner: kind %d is not in the catalog", k)
		}
		return []namedConfig{{Label: k.String(), Config: spinner.NewConfig(k)}}, nil
	}
	presets, err := root.loadPresets()
	if err != nil {
		return nil, err
	}
	if label == "" {
		return presets, nil
	}
	for _, p := range presets {
		if p.Label == label {
			return []namedConfig{p}, nil
		}
	}
	return nil, fmt.Errorf("no preset labelled %q", label)
}

func writeGIF(path string, s *scene, frames, fps int) error {
	anim := &gif.GIF{}
	delay := max(1, 100/fps)
	for i := 0; i < frames; i++ {
		img := s.frame(float64(i) / float64(fps))
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

// writePNGs writes one PNG per frame. With more than one frame the
// frame number is inserted before the extension.
func writePNGs(path string, s *scene, frames, fps int) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for i := 0; i < frames; i++ {
		name := path
		if frames > 1 {
			name = fmt.Sprintf("%s-%03d.png", base, i)
		}
		img := s.frame(float64(i) / float64(fps))
		if err := writePNG(name, img); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}
