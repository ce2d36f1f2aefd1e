// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gioui.org/spinner"
	"gioui.org/spinner/internal/logger"
	"gioui.org/spinner/preset"
)

type rootFlags struct {
	verbose bool
	jsonLog bool
	presets string
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "spinners",
		Short:         "Render and preview animated spinners",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: !flags.jsonLog,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.jsonLog, "log-json", false, "Log as JSON")
	cmd.PersistentFlags().StringVarP(&flags.presets, "presets", "p", "", "Preset file; defaults to the demo catalog")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newInitCmd(flags))

	return cmd
}

// namedConfig is a resolved preset.
type namedConfig struct {
	Label  string
	Config spinner.Config
}

// loadPresets returns the presets of the --presets file, or the demo
// catalog.
func (f *rootFlags) loadPresets() ([]namedConfig, error) {
	file := preset.DemoFile()
	if f.presets != "" {
		var err error
		file, err = preset.Load(f.presets, f.log)
		if err != nil {
			return nil, err
		}
	}
	configs, err := file.Configs()
	if err != nil {
		return nil, err
	}
	named := make([]namedConfig, len(configs))
	for i, c := range configs {
		named[i] = namedConfig{Label: file.Spinners[i].Label, Config: c}
	}
	return named, nil
}
