package colormodel

import "math"

// HSL is a hue/saturation/lightness color rounded to whole units.
// H is in degrees [0,360); S and L are percentages [0,100].
type HSL struct {
	H int
	S int
	L int
}

// HSLf is the unrounded form of HSL. H is in degrees [0,360); S and L
// are fractions in [0,1].
type HSLf struct {
	H float64
	S float64
	L float64
}

// ToHSLf converts c to HSL without rounding.
func ToHSLf(c RGB) HSLf {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	// achromatic
	if max == min {
		return HSLf{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSLf{H: math.Mod(h*360, 360), S: s, L: l}
}

// ToHSL converts c to HSL rounded to whole degrees and percent.
func ToHSL(c RGB) HSL {
	f := ToHSLf(c)
	return HSL{
		H: normalizeHue(int(math.Round(f.H))),
		S: int(math.Round(f.S * 100)),
		L: int(math.Round(f.L * 100)),
	}
}

// FromHSL converts a rounded HSL value back to RGB. Hue is wrapped into
// [0,360) and S, L are clamped to [0,100] first.
func FromHSL(c HSL) RGB {
	return FromHSLf(HSLf{
		H: float64(normalizeHue(c.H)),
		S: float64(clampPercent(c.S)) / 100,
		L: float64(clampPercent(c.L)) / 100,
	})
}

// FromHSLf converts an unrounded HSL value to RGB using the chroma and
// hue-sector method.
func FromHSLf(c HSLf) RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clampUnit(c.S)
	l := clampUnit(c.L)

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := l - chroma/2
	return RGB{
		R: unitToChannel(r + m),
		G: unitToChannel(g + m),
		B: unitToChannel(b + m),
	}
}

// normalizeHue wraps h into [0,360). A computed hue of exactly 360 is the
// same angle as 0.
func normalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func unitToChannel(v float64) uint8 {
	return ClampChannel(math.Round(v * 255))
}
