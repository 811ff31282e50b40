// Package colormodel converts between the RGB, HSL and hexadecimal
// representations of an 8-bit-per-channel color.
//
// RGB is authoritative. HSL and Hex values are derived views and are
// recomputed from an RGB value whenever they are needed.
package colormodel

import (
	"math"
	"strings"

	"fortio.org/safecast"
)

// Channel identifies one of the three RGB components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the RGB channels in display order.
var Channels = [...]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Next returns the channel after c, wrapping from Blue to Red.
func (c Channel) Next() Channel {
	return (c + 1) % Channel(len(Channels))
}

// Prev returns the channel before c, wrapping from Red to Blue.
func (c Channel) Prev() Channel {
	n := Channel(len(Channels))
	return (c + n - 1) % n
}

// RGB is an additive color with 8 bits per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Default is the color a fresh picker starts on.
var Default = RGB{R: 155, G: 135, B: 245}

// Channel returns the value of channel c.
func (c RGB) Channel(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}

// With returns a copy of c with channel ch replaced by v.
func (c RGB) With(ch Channel, v uint8) RGB {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// ClampChannel truncates v toward zero and clamps it to [0,255].
// NaN becomes 0.
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Trunc(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return safecast.MustConv[uint8](int(v))
}

// ParseChannel reads a channel value from user text the way a lenient
// integer parser does: leading whitespace is skipped, an optional sign and
// the leading run of decimal digits are consumed, and anything after is
// ignored. Input with no digits yields 0. The result is clamped.
func ParseChannel(s string) uint8 {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		digits++
		// saturate early; anything past 255 clamps anyway
		if n <= 255 {
			n = n*10 + int(c-'0')
		}
	}
	if digits == 0 || neg {
		return 0
	}
	return ClampChannel(float64(n))
}
