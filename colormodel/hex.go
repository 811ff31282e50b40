package colormodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Hex is a "#rrggbb" color string.
type Hex string

// ToHex formats c as a lowercase, zero-padded "#rrggbb" string.
func ToHex(c RGB) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Upper returns h with its hex digits in upper case, for display.
func (h Hex) Upper() string {
	return strings.ToUpper(string(h))
}

// ParseHex reads a "#rrggbb" or "rrggbb" string in either case.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, errors.Errorf("colormodel: parse %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "colormodel: parse %q", s)
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// MarshalText encodes c as its hex string so RGB values read naturally in
// YAML and JSON documents.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(ToHex(c)), nil
}

// UnmarshalText parses a hex string produced by MarshalText.
func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
