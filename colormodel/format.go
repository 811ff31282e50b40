package colormodel

import "fmt"

// CSS returns c as "rgb(r, g, b)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CSS returns c as "hsl(h, s%, l%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// CSS returns h unchanged; it exists so all three representations share
// one method for their copy text.
func (h Hex) CSS() string {
	return string(h)
}

func (c RGB) String() string { return c.CSS() }

func (c HSL) String() string { return c.CSS() }
