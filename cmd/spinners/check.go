// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gioui.org/spinner/preset"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <preset-file>...",
		Short: "Validate preset files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				f, err := preset.Load(path, root.log)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d spinners)\n", path, len(f.Spinners))
			}
			if failed > 0 {
				return fmt.Errorf("check: %d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}
