package colormodel

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestToHSLKnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{0, 100, 50}},
		{"green", RGB{0, 255, 0}, HSL{120, 100, 50}},
		{"blue", RGB{0, 0, 255}, HSL{240, 100, 50}},
		{"yellow", RGB{255, 255, 0}, HSL{60, 100, 50}},
		{"cyan", RGB{0, 255, 255}, HSL{180, 100, 50}},
		{"magenta", RGB{255, 0, 255}, HSL{300, 100, 50}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 100}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 50}},
		{"default", Default, HSL{251, 85, 75}},
		{"dark slate", RGB{5, 10, 15}, HSL{210, 50, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHSL(tt.in); got != tt.want {
				t.Fatalf("ToHSL(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToHSLHueWrapsAt360(t *testing.T) {
	// Hue is 359.76 degrees here and rounds up to a full turn.
	got := ToHSL(RGB{255, 0, 1})
	if got.H != 0 {
		t.Fatalf("expected hue 360 to wrap to 0, got %d", got.H)
	}
	if got.S != 100 || got.L != 50 {
		t.Fatalf("unexpected saturation/lightness: %+v", got)
	}
}

func TestNormalizeHue(t *testing.T) {
	cases := map[int]int{0: 0, 359: 359, 360: 0, 361: 1, 720: 0, -1: 359, -360: 0}
	for in, want := range cases {
		if got := normalizeHue(in); got != want {
			t.Errorf("normalizeHue(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestAchromaticHasZeroSaturation(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		got := ToHSL(c)
		if got.S != 0 || got.H != 0 {
			t.Fatalf("ToHSL(%v) = %+v, want zero hue and saturation", c, got)
		}
	}
}

// forEachRGB visits the whole cube, or a strided subset under -short.
func forEachRGB(t *testing.T, fn func(c RGB)) {
	t.Helper()
	step := 1
	if testing.Short() {
		step = 5
	}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				fn(RGB{uint8(r), uint8(g), uint8(b)})
			}
		}
	}
}

func TestToHSLRangeAndDeterminism(t *testing.T) {
	forEachRGB(t, func(c RGB) {
		got := ToHSL(c)
		if got.H < 0 || got.H >= 360 || got.S < 0 || got.S > 100 || got.L < 0 || got.L > 100 {
			t.Fatalf("ToHSL(%v) = %+v out of range", c, got)
		}
		if again := ToHSL(c); again != got {
			t.Fatalf("ToHSL(%v) not deterministic: %+v then %+v", c, got, again)
		}
	})
}

func TestToHSLfMatchesColorful(t *testing.T) {
	forEachRGB(t, func(c RGB) {
		got := ToHSLf(c)
		h, s, l := toColorful(c).Hsl()
		dh := math.Abs(got.H - h)
		if dh > 180 {
			dh = 360 - dh
		}
		if s == 0 {
			dh = 0
		}
		if dh > 1e-6 || math.Abs(got.S-s) > 1e-9 || math.Abs(got.L-l) > 1e-9 {
			t.Fatalf("ToHSLf(%v) = %+v, colorful says (%v, %v, %v)", c, got, h, s, l)
		}
	})
}

func channelDistance(a, b RGB) int {
	d := 0
	for _, ch := range Channels {
		x := int(a.Channel(ch)) - int(b.Channel(ch))
		if x < 0 {
			x = -x
		}
		if x > d {
			d = x
		}
	}
	return d
}

func TestRoundTripPrecise(t *testing.T) {
	forEachRGB(t, func(c RGB) {
		back := FromHSLf(ToHSLf(c))
		if d := channelDistance(c, back); d > 1 {
			t.Fatalf("FromHSLf(ToHSLf(%v)) = %v, off by %d", c, back, d)
		}
	})
}

func TestRoundTripRounded(t *testing.T) {
	// Whole degrees and percent cannot address every RGB value; 5 is the
	// worst case over the full cube.
	const tolerance = 5
	forEachRGB(t, func(c RGB) {
		back := FromHSL(ToHSL(c))
		if d := channelDistance(c, back); d > tolerance {
			t.Fatalf("FromHSL(ToHSL(%v)) = %v, off by %d", c, back, d)
		}
	})
}

func TestFromHSLKnownColors(t *testing.T) {
	tests := []struct {
		in   HSL
		want RGB
	}{
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 50}, RGB{0, 255, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{60, 100, 50}, RGB{255, 255, 0}},
		{HSL{0, 0, 0}, RGB{0, 0, 0}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
		{HSL{210, 50, 40}, RGB{51, 102, 153}},
		{HSL{251, 85, 75}, RGB{157, 137, 245}},
		// out-of-range input is normalized
		{HSL{360, 100, 50}, RGB{255, 0, 0}},
		{HSL{-120, 100, 50}, RGB{0, 0, 255}},
		{HSL{30, 150, -10}, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := FromHSL(tt.in); got != tt.want {
			t.Errorf("FromHSL(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromHSLfAgreesWithColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		for s := 0.0; s <= 1; s += 0.125 {
			for l := 0.0; l <= 1; l += 0.125 {
				got := FromHSLf(HSLf{H: h, S: s, L: l})
				r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
				if d := channelDistance(got, RGB{r, g, b}); d > 1 {
					t.Fatalf("FromHSLf(%v,%v,%v) = %v, colorful says %v", h, s, l, got, RGB{r, g, b})
				}
			}
		}
	}
}
