// SPDX-License-Identifier: Unlicense OR MIT

// Package widget draws spinners with Gio. Surface renders spinner
// geometry into Gio operations, and Spinners hosts the spinners of a
// window as ordinary layout widgets.
package widget
