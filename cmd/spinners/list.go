// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gioui.org/spinner"
	"gioui.org/spinner/preset"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spinner kinds and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listJSONPayload struct {
	Kinds   []string        `json:"kinds"`
	Presets []preset.Preset `json:"presets"`
}

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions) error {
	presets, err := root.loadPresets()
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), presets)
	}
	return renderListTable(cmd.OutOrStdout(), presets)
}

func renderListJSON(w io.Writer, presets []namedConfig) error {
	payload := listJSONPayload{Presets: make([]preset.Preset, len(presets))}
	for _, k := range spinner.Kinds() {
		payload.Kinds = append(payload.Kinds, k.String())
	}
	for i, p := range presets {
		payload.Presets[i] = preset.FromConfig(p.Label, p.Config)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderListTable(w io.Writer, presets []namedConfig) error {
	heading := fmt.Sprint
	if isTerminal(w) {
		style := lipgloss.NewStyle().Bold(true).Underline(true)
		heading = func(a ...any) string { return style.Render(fmt.Sprint(a...)) }
	}

	fmt.Fprintln(w, heading("Kinds"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND")
	for _, k := range spinner.Kinds() {
		fmt.Fprintf(tw, "%d\t%s\n", k, k)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Presets"))
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tKIND\tRADIUS\tTHICKNESS\tSPEED\tCOLOR")
	for _, p := range presets {
		c := p.Config
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%s\n",
			p.Label, c.Kind, c.Radius, c.Thickness, c.Speed, preset.FormatColor(c.Color))
	}
	return tw.Flush()
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
