// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a spinner motif. A Kind is also an Option that sets
// Config.Kind.
type Kind uint8

const (
	// KindRainbow is an arc that grows and shrinks while its hue cycles.
	KindRainbow Kind = iota
	// KindArc is a rotating arc that grows and shrinks.
	KindArc
	// KindAng is an arc of fixed sweep rotating over a background ring.
	KindAng
	// KindDots is a ring of dots with a swelling run of dots.
	KindDots
	// KindVDots is a ring of dots overlaid by a rotating arc.
	KindVDots
	// KindBounceDots is a row of dots jumping in sequence.
	KindBounceDots
	// KindFadeDots is a row of dots fading in sequence.
	KindFadeDots
	// KindBounceBall is a column of balls bouncing on a floor.
	KindBounceBall
	// KindAngEclipse is an arc with a growing tail.
	KindAngEclipse
	// KindIngYang is a pair of opposed arcs on offset radii.
	KindIngYang
	// KindBarChartSine is a row of bars following a sine wave.
	KindBarChartSine
	// KindRotateDots is an orbit of dots that accelerates and brakes.
	KindRotateDots
	// KindTwinAng is a pair of arcs rotating in opposite directions.
	KindTwinAng
	// KindPulsar is an expanding ring leaving a decaying echo.
	KindPulsar
	// KindClock is a dial with two hands.
	KindClock
	// KindGooeyBalls is a pair of balls merging and separating.
	KindGooeyBalls

	kindCount
)

var kindNames = [kindCount]string{
	KindRainbow:      "rainbow",
	KindArc:          "arc",
	KindAng:          "ang",
	KindDots:         "dots",
	KindVDots:        "vdots",
	KindBounceDots:   "bounce-dots",
	KindFadeDots:     "fade-dots",
	KindBounceBall:   "bounce-ball",
	KindAngEclipse:   "ang-eclipse",
	KindIngYang:      "ing-yang",
	KindBarChartSine: "bar-chart-sine",
	KindRotateDots:   "rotate-dots",
	KindTwinAng:      "twin-ang",
	KindPulsar:       "pulsar",
	KindClock:        "clock",
	KindGooeyBalls:   "gooey-balls",
}

// Kinds returns every valid kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the kind named s. Names are case insensitive and
// underscores are treated as dashes. A decimal number is accepted as a
// raw kind value even when it is outside the catalog.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Kind(n), nil
	}
	name := strings.ReplaceAll(strings.ToLower(s), "_", "-")
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("spinner: unknown kind %q", s)
}

// MarshalText encodes a kind by name, or by number when it is outside
// the catalog, so that every Kind survives a round trip.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return strconv.AppendUint(nil, uint64(k), 10), nil
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
