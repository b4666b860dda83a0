package palette

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque colour with 8-bit device RGB channels.
//
// Only RGB is stored. The Lab and HSL forms are computed on demand by pure
// functions so they can never disagree with the channels.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSL is a colour in hue/saturation/lightness form.
type HSL struct {
	H float64 `json:"h"` // Hue in degrees, [0, 360)
	S float64 `json:"s"` // Saturation, [0, 1]
	L float64 `json:"l"` // Lightness, [0, 1]
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// normalized returns the channels scaled to [0, 1].
func (c Color) normalized() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Lab returns the colour in CIE L*a*b*, using the sRGB working space and the
// D65 reference white. L is in [0, 100].
func (c Color) Lab() (l, a, b float64) {
	// go-colorful reports every component divided by 100.
	l, a, b = c.normalized().Lab()
	return l * 100, a * 100, b * 100
}

// lab is a Lab triple held only for the duration of a single computation.
type lab [3]float64

func (c Color) lab() lab {
	l, a, b := c.Lab()
	return lab{l, a, b}
}

func labDistance(p, q lab) float64 {
	dl := p[0] - q[0]
	da := p[1] - q[1]
	db := p[2] - q[2]
	return dl*dl + da*da + db*db
}

// Distance returns the squared Euclidean distance between a and b in CIE
// Lab. It is symmetric and zero for identical colours.
func Distance(a, b Color) float64 {
	return labDistance(a.lab(), b.lab())
}

// HSL returns the colour in hue/saturation/lightness form. Achromatic
// colours report a hue of 0.
func (c Color) HSL() HSL {
	h, s, l := c.normalized().Hsl()
	return HSL{H: h, S: s, L: l}
}

// FromHSL converts an HSL value to a Color. Channels are truncated, not
// rounded, after scaling to [0, 255].
func FromHSL(v HSL) Color {
	rgb := colorful.Hsl(v.H, v.S, v.L)
	return Color{
		R: truncateChannel(rgb.R),
		G: truncateChannel(rgb.G),
		B: truncateChannel(rgb.B),
	}
}

func truncateChannel(v float64) uint8 {
	v *= 255.0
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// FromColor converts any color.Color to a Color, discarding alpha. The
// channels are read un-premultiplied, so a transparent pixel keeps the RGB
// it was stored with.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// ColorsFromImage returns one Color per pixel of img in row-major order.
// Alpha is ignored; fully transparent pixels are included.
func ColorsFromImage(img image.Image) []Color {
	bounds := img.Bounds()
	colors := make([]Color, 0, bounds.Dx()*bounds.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := nrgba.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				colors = append(colors, Color{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]})
				i += 4
			}
		}
		return colors
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			colors = append(colors, FromColor(img.At(x, y)))
		}
	}
	return colors
}

// StdColors converts colors to image/color values for drawing.
func StdColors(colors []Color) []color.Color {
	out := make([]color.Color, len(colors))
	for i, c := range colors {
		out[i] = c
	}
	return out
}
