package palette

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// HueAverage selects how hues are averaged.
type HueAverage string

const (
	// HueCircular averages hues as angles, so 350° and 10° average to 0°.
	HueCircular HueAverage = "circular"

	// HueArithmetic averages hue degrees as plain numbers, so 350° and 10°
	// average to 180°.
	HueArithmetic HueAverage = "arithmetic"
)

// ParseHueAverage converts a name to a HueAverage. The empty string selects
// HueCircular.
func ParseHueAverage(name string) (HueAverage, error) {
	switch HueAverage(name) {
	case "", HueCircular:
		return HueCircular, nil
	case HueArithmetic:
		return HueArithmetic, nil
	default:
		return "", fmt.Errorf("%w: unknown hue average %q (valid: %s, %s)", ErrInvalidArgument, name, HueCircular, HueArithmetic)
	}
}

// resultantEpsilon is the mean resultant length below which hues are
// considered to cancel out and the circular mean is undefined.
const resultantEpsilon = 1e-9

// MatchingTint derives one colour from a palette and a base HSL value.
//
// paletteBytes holds consecutive RGB triples. Each triple is converted to
// HSL; the palette's hue, saturation and lightness are averaged, and each
// average is then averaged again with the matching component of base.
//
// The base hue is wrapped into [0, 360). Returns ErrInvalidArgument if
// paletteBytes is empty or not a multiple of three long, or if the base
// saturation or lightness is outside [0, 1].
func MatchingTint(base HSL, paletteBytes []byte, mode HueAverage) (Color, error) {
	if len(paletteBytes) == 0 {
		return Color{}, fmt.Errorf("%w: palette is empty", ErrInvalidArgument)
	}
	if len(paletteBytes)%3 != 0 {
		return Color{}, fmt.Errorf("%w: palette length %d is not a multiple of 3", ErrInvalidArgument, len(paletteBytes))
	}
	if !inUnitRange(base.S) {
		return Color{}, fmt.Errorf("%w: saturation %v outside [0, 1]", ErrInvalidArgument, base.S)
	}
	if !inUnitRange(base.L) {
		return Color{}, fmt.Errorf("%w: lightness %v outside [0, 1]", ErrInvalidArgument, base.L)
	}
	if math.IsNaN(base.H) || math.IsInf(base.H, 0) {
		return Color{}, fmt.Errorf("%w: hue %v is not finite", ErrInvalidArgument, base.H)
	}
	if mode == "" {
		mode = HueCircular
	}

	n := len(paletteBytes) / 3
	hues := make([]float64, 0, n)
	var saturation, lightness float64
	for i := 0; i < len(paletteBytes); i += 3 {
		hsl := Color{R: paletteBytes[i], G: paletteBytes[i+1], B: paletteBytes[i+2]}.HSL()
		hues = append(hues, hsl.H)
		saturation += hsl.S
		lightness += hsl.L
	}

	avg := HSL{
		H: meanHue(hues, mode),
		S: saturation / float64(n),
		L: lightness / float64(n),
	}

	tint := HSL{
		H: meanHue([]float64{avg.H, wrapHue(base.H)}, mode),
		S: (avg.S + base.S) / 2,
		L: (avg.L + base.L) / 2,
	}
	return FromHSL(tint), nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// wrapHue maps any finite angle in degrees into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// meanHue averages hues in degrees. In circular mode it falls back to the
// arithmetic mean when the hues cancel out.
func meanHue(hues []float64, mode HueAverage) float64 {
	if mode == HueCircular {
		radians := make([]float64, len(hues))
		var sinSum, cosSum float64
		for i, h := range hues {
			radians[i] = h * math.Pi / 180
			sinSum += math.Sin(radians[i])
			cosSum += math.Cos(radians[i])
		}
		if math.Hypot(sinSum, cosSum)/float64(len(hues)) > resultantEpsilon {
			return wrapHue(stat.CircularMean(radians, nil) * 180 / math.Pi)
		}
	}

	sum := 0.0
	for _, h := range hues {
		sum += h
	}
	return sum / float64(len(hues))
}
