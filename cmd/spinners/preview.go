// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gioui.org/spinner/internal/braille"
)

// defaultColumns is the preview width when the terminal size is
// unknown.
const defaultColumns = 80

type previewOptions struct {
	kind  string
	label string
	fps   int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Animate spinners in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fps < 1 {
				return errors.New("preview: fps must be positive")
			}
			presets, err := selectPresets(root, opts.kind, opts.label)
			if err != nil {
				return err
			}
			columns := defaultColumns
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				columns = w
			}
			root.log.Debug().Int("spinners", len(presets)).Int("columns", columns).Msg("starting preview")
			m := newPreviewModel(presets, opts.fps, columns)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Preview a single kind instead of the presets")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Preview only the preset with this label")
	cmd.Flags().IntVar(&opts.fps, "fps", 20, "Frames per second")

	return cmd
}

type previewKeys struct {
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k previewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

func (k previewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultPreviewKeys = previewKeys{
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// frameMsg advances the preview by one frame.
type frameMsg time.Time

// previewModel animates a scene as braille text. Each terminal cell
// shows 2×4 scene pixels. Frames are rendered in Update, as rendering
// advances the state of the spinners, and View only shows the last one.
type previewModel struct {
	presets []namedConfig
	scene   *scene
	fps     int
	frame   int
	paused  bool
	columns int
	canvas  string
	keys    previewKeys
	help    help.Model
}

var titleStyle = lipgloss.NewStyle().Bold(true)

func newPreviewModel(presets []namedConfig, fps, columns int) previewModel {
	m := previewModel{
		presets: presets,
		fps:     fps,
		keys:    defaultPreviewKeys,
		help:    help.New(),
	}
	m.resize(columns)
	return m
}

func (m *previewModel) resize(columns int) {
	m.columns = max(columns, 1)
	// A transparent background leaves uncovered braille dots lowered.
	m.scene = newScene(m.presets, m.columns*2, color.NRGBA{})
	m.render()
}

// render draws the current frame into the canvas.
func (m *previewModel) render() {
	m.canvas = braille.Render(m.scene.frame(m.elapsed()))
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.columns {
			m.resize(msg.Width)
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Restart):
			m.frame = 0
			m.resize(m.columns)
		}
		return m, nil

	case frameMsg:
		if !m.paused {
			m.frame++
			m.render()
		}
		return m, m.tick()
	}
	return m, nil
}

// elapsed returns the animation time in seconds.
func (m previewModel) elapsed() float64 {
	return float64(m.frame) / float64(m.fps)
}

func (m previewModel) View() string {
	var sb strings.Builder
	title := "spinners"
	if m.paused {
		title += " (paused)"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.canvas)
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
