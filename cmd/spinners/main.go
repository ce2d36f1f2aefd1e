// SPDX-License-Identifier: Unlicense OR MIT

// Command spinners lists, renders, previews and checks spinner presets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
