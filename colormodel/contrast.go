package colormodel

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Above this relative luminance black text contrasts better than white.
var lightThreshold = math.Sqrt(1.05*0.05) - 0.05

// Luminance returns the WCAG relative luminance of c in [0,1].
func Luminance(c RGB) float64 {
	_, y, _ := toColorful(c).Xyz()
	return y
}

// IsLight reports whether dark text reads better than light text on c.
func IsLight(c RGB) bool {
	return Luminance(c) > lightThreshold
}

// ContrastText returns black or white, whichever is more legible on c.
func ContrastText(c RGB) RGB {
	if IsLight(c) {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
