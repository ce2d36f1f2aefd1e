// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"bytes"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"gioui.org/spinner"
)

const sample = `version: 1
spinners:
  - label: loading
    kind: ang
    radius: 20
    thickness: 6
    color: "#ff0000"
    bg_color: white@50%
  - label: dots
    kind: bounce_dots
    dots: 5
    reverse: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(sample), "sample.yaml")
	require.NoError(t, err)
	require.Len(t, f.Spinners, 2)

	configs, err := f.Configs()
	require.NoError(t, err)

	want := spinner.Resolve(spinner.KindAng, spinner.Radius(20), spinner.Thickness(6),
		spinner.Color(color.NRGBA{R: 0xff, A: 0xff}),
		spinner.BgColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}))
	require.Equal(t, want, configs[0])

	require.Equal(t, spinner.KindBounceDots, configs[1].Kind)
	require.Equal(t, 5, configs[1].Dots)
	require.True(t, configs[1].Reverse)
	require.Equal(t, spinner.DefaultConfig().Radius, configs[1].Radius)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		field string
		tag   string
	}{
		{name: "no spinners", input: "version: 1\nspinners: []\n", field: "spinners", tag: "min"},
		{name: "missing label", input: "spinners:\n  - kind: ang\n", field: "spinners[0].label", tag: "required"},
		{name: "unknown kind", input: "spinners:\n  - label: a\n    kind: spiral\n", field: "spinners[0].kind", tag: "kind"},
		{name: "kind out of range", input: "spinners:\n  - label: a\n    kind: \"40\"\n", field: "spinners[0].kind", tag: "kind"},
		{name: "negative radius", input: "spinners:\n  - label: a\n    kind: ang\n    radius: -1\n", field: "spinners[0].radius", tag: "gt"},
		{name: "too many dots", input: "spinners:\n  - label: a\n    kind: dots\n    dots: 40\n", field: "spinners[0].dots", tag: "lte"},
		{name: "bad color", input: "spinners:\n  - label: a\n    kind: ang\n    color: blurple\n", field: "spinners[0].color", tag: "color"},
		{name: "duplicate label", input: "spinners:\n  - label: a\n    kind: ang\n  - label: a\n    kind: arc\n", field: "spinners", tag: "unique"},
		{name: "bad version", input: "version: 2\nspinners:\n  - label: a\n    kind: ang\n", field: "version", tag: "eq"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.input), "test.yaml")
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.field, ve.Field)
			require.Equal(t, tc.tag, ve.Tag)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("spinners:\n  - label: a\n    kind: [\n"), "broken.yaml")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "broken.yaml", pe.Path)
	require.Positive(t, pe.Line)

	_, err = Parse([]byte("spinners:\n  - label: a\n    kind: ang\n    colour: red\n"), "typo.yaml")
	require.ErrorAs(t, err, &pe)

	_, err = Parse(nil, "empty.yaml")
	require.ErrorAs(t, err, &pe)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#00ff0080", color.NRGBA{G: 0xff, A: 0x80}},
		{"White", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"black@0%", color.NRGBA{}},
		{"red @ 50%", color.NRGBA{R: 0xff, A: 0x80}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
	for _, bad := range []string{"", "#12", "nocolor", "red@150%", "red@x"} {
		_, err := ParseColor(bad)
		require.Error(t, err, bad)
	}
}

func TestFormatColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "white", FormatColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	require.Equal(t, "#ffffff80", FormatColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}))
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}
	got, err := ParseColor(FormatColor(c))
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestDemoPresets(t *testing.T) {
	t.Parallel()

	f := DemoFile()
	require.NoError(t, Validate(f))
	configs, err := f.Configs()
	require.NoError(t, err)

	seen := make(map[spinner.Kind]bool)
	for _, c := range configs {
		seen[c.Kind] = true
	}
	for _, k := range spinner.Kinds() {
		require.True(t, seen[k], "no demo preset for %v", k)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	f := &File{Version: Version}
	for _, k := range spinner.Kinds() {
		f.Spinners = append(f.Spinners, FromConfig(k.String(), spinner.NewConfig(k)))
	}
	data, err := Marshal(f)
	require.NoError(t, err)

	got, err := Parse(data, "roundtrip.yaml")
	require.NoError(t, err)
	configs, err := got.Configs()
	require.NoError(t, err)
	for i, k := range spinner.Kinds() {
		require.Equal(t, spinner.NewConfig(k), configs[i])
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	f, err := Load(path, log)
	require.NoError(t, err)
	require.Len(t, f.Spinners, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "loaded preset file", entry["message"])
	require.EqualValues(t, 2, entry["spinners"])

	buf.Reset()
	_, err = Load(filepath.Join(dir, "missing.yaml"), log)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, buf.String(), `"level":"error"`)
}
