// SPDX-License-Identifier: Unlicense OR MIT

/*
Package preset reads spinner presets from YAML files.

A preset file lists labelled spinners:

	version: 1
	spinners:
	  - label: loading
	    kind: ang
	    radius: 16
	    thickness: 6
	    color: "#ffffff"
	    bg_color: white@50%

Absent fields keep the spinner defaults. Colors are hex values
(#rgb, #rgba, #rrggbb, #rrggbbaa) or CSS color names, optionally
followed by @ and an opacity percentage.
*/
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"gioui.org/spinner"
)

// Version is the preset file format version.
const Version = 1

// File is the content of a preset file.
type File struct {
	Version  int      `json:"version,omitempty" yaml:"version" validate:"omitempty,eq=1"`
	Spinners []Preset `json:"spinners,omitempty" yaml:"spinners" validate:"required,min=1,unique=Label,dive"`
}

// Preset describes one spinner. Nil fields keep their defaults.
type Preset struct {
	Label        string   `json:"label" yaml:"label" validate:"required,max=64"`
	Kind         string   `json:"kind" yaml:"kind" validate:"required,kind"`
	Radius       *float32 `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,gt=0,lte=1024"`
	Speed        *float32 `json:"speed,omitempty" yaml:"speed,omitempty" validate:"omitempty,gte=-100,lte=100"`
	Thickness    *float32 `json:"thickness,omitempty" yaml:"thickness,omitempty" validate:"omitempty,gt=0,lte=256"`
	Color        string   `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,color"`
	BgColor      string   `json:"bg_color,omitempty" yaml:"bg_color,omitempty" validate:"omitempty,color"`
	AltColor     string   `json:"alt_color,omitempty" yaml:"alt_color,omitempty" validate:"omitempty,color"`
	Angle        *float32 `json:"angle,omitempty" yaml:"angle,omitempty" validate:"omitempty,gte=0,lte=6.2832"`
	AngleMin     *float32 `json:"angle_min,omitempty" yaml:"angle_min,omitempty" validate:"omitempty,gte=0,lte=6.2832"`
	AngleMax     *float32 `json:"angle_max,omitempty" yaml:"angle_max,omitempty" validate:"omitempty,gte=0,lte=6.2832"`
	Dots         *int     `json:"dots,omitempty" yaml:"dots,omitempty" validate:"omitempty,gte=0,lte=32"`
	MidDots      *int     `json:"mid_dots,omitempty" yaml:"mid_dots,omitempty" validate:"omitempty,gte=0,lte=32"`
	MinThickness *float32 `json:"min_thickness,omitempty" yaml:"min_thickness,omitempty" validate:"omitempty,gte=0,lte=256"`
	Reverse      *bool    `json:"reverse,omitempty" yaml:"reverse,omitempty"`
	Delta        *float32 `json:"delta,omitempty" yaml:"delta,omitempty" validate:"omitempty,gte=-1024,lte=1024"`
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a preset file. Path is used in errors
// only.
func Parse(data []byte, path string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file")
		}
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads, parses and validates the preset file at path.
func Load(path string, log zerolog.Logger) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("read preset file")
		return nil, &ParseError{Path: path, Err: err}
	}
	f, err := Parse(data, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("load preset file")
		return nil, err
	}
	log.Debug().Str("path", path).Int("spinners", len(f.Spinners)).Msg("loaded preset file")
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("preset: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("preset: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return line
}

// Options converts p to spinner options. Only the fields present in p
// produce options.
func (p Preset) Options() ([]spinner.Option, error) {
	k, err := spinner.ParseKind(p.Kind)
	if err != nil {
		return nil, &ValidationError{Field: "kind", Tag: "kind", Err: err}
	}
	opts := []spinner.Option{k}
	addFloat := func(v *float32, o func(float32) spinner.Option) {
		if v != nil {
			opts = append(opts, o(*v))
		}
	}
	addFloat(p.Radius, func(v float32) spinner.Option { return spinner.Radius(v) })
	addFloat(p.Speed, func(v float32) spinner.Option { return spinner.Speed(v) })
	addFloat(p.Thickness, func(v float32) spinner.Option { return spinner.Thickness(v) })
	addFloat(p.Angle, func(v float32) spinner.Option { return spinner.Angle(v) })
	addFloat(p.AngleMin, func(v float32) spinner.Option { return spinner.AngleMin(v) })
	addFloat(p.AngleMax, func(v float32) spinner.Option { return spinner.AngleMax(v) })
	addFloat(p.MinThickness, func(v float32) spinner.Option { return spinner.MinThickness(v) })
	addFloat(p.Delta, func(v float32) spinner.Option { return spinner.Delta(v) })
	if p.Dots != nil {
		opts = append(opts, spinner.Dots(*p.Dots))
	}
	if p.MidDots != nil {
		opts = append(opts, spinner.MidDots(*p.MidDots))
	}
	if p.Reverse != nil {
		opts = append(opts, spinner.Reverse(*p.Reverse))
	}
	colors := []struct {
		field, value string
		opt          func(c spinner.Color) spinner.Option
	}{
		{"color", p.Color, func(c spinner.Color) spinner.Option { return c }},
		{"bg_color", p.BgColor, func(c spinner.Color) spinner.Option { return spinner.BgColor(c) }},
		{"alt_color", p.AltColor, func(c spinner.Color) spinner.Option { return spinner.AltColor(c) }},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		col, err := ParseColor(c.value)
		if err != nil {
			return nil, &ValidationError{Field: c.field, Tag: "color", Err: err}
		}
		opts = append(opts, c.opt(spinner.Color(col)))
	}
	return opts, nil
}

// Config resolves p into a spinner configuration.
func (p Preset) Config() (spinner.Config, error) {
	opts, err := p.Options()
	if err != nil {
		return spinner.Config{}, err
	}
	return spinner.Resolve(opts...), nil
}

// Configs resolves every preset of f in order.
func (f *File) Configs() ([]spinner.Config, error) {
	configs := make([]spinner.Config, 0, len(f.Spinners))
	for i, p := range f.Spinners {
		c, err := p.Config()
		if err != nil {
			return nil, fmt.Errorf("spinners[%d]: %w", i, err)
		}
		configs = append(configs, c)
	}
	return configs, nil
}
