package value

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xAARRGGBB color.
type Color uint32

// Transparent is fully transparent black.
const Transparent Color = 0

// ARGB packs color components into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

// FromColor converts a color from the standard library.
func FromColor(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// Components returns alpha, red, green and blue.
func (c Color) Components() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// RGBA implements color.Color. Components are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca, cr, cg, cb := c.Components()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// String renders opaque colors as #rrggbb, others as rgba(…).
func (c Color) String() string {
	a, r, g, b := c.Components()
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(roundAlpha(a)))
}

func roundAlpha(a uint8) float64 {
	return float64(int(float64(a)/255*100+0.5)) / 100
}

var _ color.Color = Color(0)
