// SPDX-License-Identifier: Unlicense OR MIT

/*
Package spinner implements animated, indeterminate progress indicators
for immediate mode user interfaces.

Every spinner is redrawn each frame from the elapsed time and a Config.
A Config is assembled from typed options, each carrying one parameter:

	spinner.Spin(ctx, "loading",
		spinner.KindAng,
		spinner.Radius(16),
		spinner.Thickness(4),
		spinner.Speed(6),
	)

Options may appear in any order and any number of times; the last
option of a type wins and absent options take the defaults documented
on Config. Only the option types of this package satisfy Option, so an
unsupported parameter is a compile time error.

The Kind option selects the motif. Invoke draws a spinner from a kind
held in a variable, for example one read from a configuration file; a
kind outside the catalog draws nothing. Each motif also has a direct
function, such as Ang or DotsRing, taking its parameters positionally.
Both forms draw the same geometry for the same parameters. The direct
functions of the Dots and Clock kinds are DotsRing and ClockHands, as
Dots is the option setting the number of dots.

# Context

Spinners draw through a Context holding the collaborators of a frame:
the draw.Surface receiving the geometry, a Layouter reserving screen
space, a Clock supplying elapsed time and a state.Store for the few
spinners that carry velocity or phase from one frame to the next. All of
them are supplied by the caller, so a test can drive a Context with a
fixed clock, a draw.Recorder and a fresh store.

A spinner whose reserved rectangle is not visible returns false without
drawing or touching its state.

# Identity

The label of a spinner is hashed into an ID within the current scope
(see Context.PushID). The ID keys the spinner's persistent state. Two
spinners with the same label in the same scope share their state; that
is a programming error which is not detected.

# Concurrency

A Context and its Store must only be used from the goroutine that draws
the frame.
*/
package spinner
