// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"gioui.org/spinner"
	"gioui.org/spinner/preset"
	"gioui.org/spinner/state"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoSpinners = `version: 1
spinners:
  - label: first
    kind: ang
    radius: 10
  - label: second
    kind: dots
    color: orange
`

func TestListTable(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Kinds")
	require.Contains(t, out, "Presets")
	for _, k := range spinner.Kinds() {
		require.Contains(t, out, k.String())
	}
	require.Contains(t, out, "SpinnerTwinAng")
}

func TestListJSON(t *testing.T) {
	path := writeFile(t, "presets.yaml", twoSpinners)
	out, err := executeCommand(t, "list", "--json", "--presets", path)
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Kinds, len(spinner.Kinds()))
	require.Len(t, payload.Presets, 2)
	require.Equal(t, "first", payload.Presets[0].Label)
	require.Equal(t, "ang", payload.Presets[0].Kind)
	require.Equal(t, "orange", payload.Presets[1].Color)
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.yaml", twoSpinners)
	bad := writeFile(t, "bad.yaml", "spinners:\n  - label: x\n    kind: nope\n")

	out, err := executeCommand(t, "check", good)
	require.NoError(t, err)
	require.Contains(t, out, "ok")
	require.Contains(t, out, "2 spinners")

	out, err = executeCommand(t, "check", good, bad)
	require.ErrorContains(t, err, "1 of 2 files invalid")
	require.Contains(t, out, "FAIL "+bad)
}

func TestCheckRequiresArgs(t *testing.T) {
	_, err := executeCommand(t, "check")
	require.Error(t, err)
}

func TestRenderGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dots.gif")
	out, err := executeCommand(t, "render", "--kind", "dots", "--frames", "3", "--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote 3 frames")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, anim.Image, 3)
	b := anim.Image[0].Bounds()
	require.Positive(t, b.Dx())
	require.Positive(t, b.Dy())
}

func TestRenderPNGFrames(t *testing.T) {
	dir := t.TempDir()
	presets := writeFile(t, "presets.yaml", twoSpinners)
	_, err := executeCommand(t, "render", "--presets", presets, "--label", "second",
		"--frames", "2", "--out", filepath.Join(dir, "spin.png"))
	require.NoError(t, err)

	for _, name := range []string{"spin-000.png", "spin-001.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		_, err = png.Decode(f)
		f.Close()
		require.NoError(t, err)
	}
}

func TestRenderSinglePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.png")
	_, err := executeCommand(t, "render", "--kind", "pulsar", "--frames", "1", "--out", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--out", filepath.Join(dir, "x.bmp")}, "unsupported output format"},
		{"kind", []string{"--kind", "nope", "--out", filepath.Join(dir, "x.gif")}, "unknown kind"},
		{"out of catalog", []string{"--kind", "200", "--out", filepath.Join(dir, "x.gif")}, "not in the catalog"},
		{"label", []string{"--label", "nope", "--out", filepath.Join(dir, "x.gif")}, "no preset labelled"},
		{"frames", []string{"--frames", "0", "--out", filepath.Join(dir, "x.gif")}, "must be positive"},
		{"background", []string{"--bg", "nocolor", "--out", filepath.Join(dir, "x.gif")}, "--bg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, append([]string{"render"}, tt.args...)...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestInit(t *testing.T) {
	out, err := executeCommand(t, "init")
	require.NoError(t, err)

	f, err := preset.Parse([]byte(out), "stdout")
	require.NoError(t, err)
	require.Len(t, f.Spinners, len(preset.DemoPresets()))

	path := filepath.Join(t.TempDir(), "demo.yaml")
	_, err = executeCommand(t, "init", "--out", path)
	require.NoError(t, err)
	_, err = executeCommand(t, "check", path)
	require.NoError(t, err)

	_, err = executeCommand(t, "init", "--out", path)
	require.ErrorIs(t, err, errExists)
}

func TestPreviewModel(t *testing.T) {
	presets := []namedConfig{{Label: "dots", Config: spinner.NewConfig(spinner.KindDots)}}
	m := newPreviewModel(presets, 10, 40)
	require.NotNil(t, m.Init())

	next, cmd := m.Update(frameMsg{})
	m = next.(previewModel)
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.frame)
	require.InDelta(t, 0.1, m.elapsed(), 1e-9)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(previewModel)
	require.True(t, m.paused)
	next, _ = m.Update(frameMsg{})
	m = next.(previewModel)
	require.Equal(t, 1, m.frame)

	view := m.View()
	require.Contains(t, view, "paused")
	require.Contains(t, view, "quit")
	// Braille cells of the spinner itself.
	require.True(t, strings.ContainsFunc(view, func(r rune) bool { return r > 0x2800 && r <= 0x28ff }))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(previewModel)
	require.Equal(t, 0, m.frame)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPreviewResize(t *testing.T) {
	presets := []namedConfig{{Label: "arc", Config: spinner.NewConfig(spinner.KindArc)}}
	m := newPreviewModel(presets, 10, 20)
	require.GreaterOrEqual(t, m.scene.size.X, 40)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(previewModel)
	require.Equal(t, 60, m.columns)
	require.Equal(t, 120, m.scene.size.X)
}

func stateSnapshot(t *testing.T, st *state.Store) map[state.Key]float32 {
	t.Helper()

	snap := make(map[state.Key]float32)
	for _, k := range st.Keys() {
		v, ok := st.Lookup(k.ID, k.Slot)
		require.True(t, ok)
		snap[k] = v
	}
	return snap
}

func TestPreviewPausedKeepsState(t *testing.T) {
	presets := []namedConfig{
		{Label: "rot", Config: spinner.NewConfig(spinner.KindRotateDots)},
		{Label: "dots", Config: spinner.NewConfig(spinner.KindDots)},
		{Label: "pulsar", Config: spinner.NewConfig(spinner.KindPulsar)},
	}
	m := newPreviewModel(presets, 10, 40)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(previewModel)
	require.True(t, m.paused)

	st := m.scene.ctx.State
	before := stateSnapshot(t, st)
	require.NotEmpty(t, before)
	view := m.View()
	for i := 0; i < 10; i++ {
		next, _ = m.Update(frameMsg{})
		m = next.(previewModel)
		require.Equal(t, view, m.View())
	}
	require.Equal(t, 0, m.frame)
	require.Equal(t, before, stateSnapshot(t, st))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(previewModel)
	next, _ = m.Update(frameMsg{})
	m = next.(previewModel)
	require.NotEqual(t, before, stateSnapshot(t, st))
}
