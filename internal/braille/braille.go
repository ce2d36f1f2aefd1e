// SPDX-License-Identifier: Unlicense OR MIT

// Package braille renders images as Unicode braille text. Each cell
// covers 2×4 pixels; a dot is raised where the pixel is covered, and
// the cell is colored with the average color of its covered pixels.
package braille

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gioui.org/spinner/internal/f32color"
)

// Threshold is the alpha above which a pixel raises its dot.
const Threshold = 0x40

// dotBits maps pixel offsets within a cell to braille dot bits.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell is one braille character and its color.
type Cell struct {
	Rune  rune
	Color color.NRGBA
}

// Cells converts img into rows of braille cells.
func Cells(img image.Image) [][]Cell {
	b := img.Bounds()
	rows := make([][]Cell, 0, (b.Dy()+3)/4)
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		row := make([]Cell, 0, (b.Dx()+1)/2)
		for x := b.Min.X; x < b.Max.X; x += 2 {
			row = append(row, cell(img, b, x, y))
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(img image.Image, b image.Rectangle, x0, y0 int) Cell {
	var (
		bits     rune
		r, g, bl int
		n        int
	)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			p := image.Pt(x0+dx, y0+dy)
			if !p.In(b) {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
			if c.A < Threshold {
				continue
			}
			bits |= dotBits[dy][dx]
			r += int(c.R)
			g += int(c.G)
			bl += int(c.B)
			n++
		}
	}
	c := Cell{Rune: 0x2800 + bits}
	if n > 0 {
		c.Color = color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 0xff}
	}
	return c
}

// Render returns img as lines of colored braille text. Blank cells are
// rendered as spaces.
func Render(img image.Image) string {
	var sb strings.Builder
	for i, row := range Cells(img) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Rune == 0x2800 {
				sb.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexRGB(c.Color)))
			sb.WriteString(style.Render(string(c.Rune)))
		}
	}
	return sb.String()
}

// hexRGB formats c as #rrggbb, the form lipgloss accepts.
func hexRGB(c color.NRGBA) string {
	return f32color.Hex(c)[:7]
}
