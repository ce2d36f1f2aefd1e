// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gioui.org/spinner/preset"
)

func newInitCmd(root *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the demo catalog as a preset file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := preset.Marshal(preset.DemoFile())
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := writeNewFile(out, data); err != nil {
				return err
			}
			root.log.Debug().Str("path", out).Msg("wrote demo presets")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file; defaults to standard output")
	return cmd
}

var errExists = errors.New("file exists")

// writeNewFile writes data to path, refusing to overwrite an existing
// file.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("init: %s: %w", path, errExists)
		}
		return fmt.Errorf("init: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("init: %w", err)
	}
	return f.Close()
}
