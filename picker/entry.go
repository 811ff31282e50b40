package picker

// maxEntryLen bounds a channel value box: a sign and a few digits.
const maxEntryLen = 8

// Entry is the text of a numeric value box being edited, with a caret.
// Only ASCII digits and signs are accepted.
type Entry struct {
	buf    []rune
	cursor int
}

// Reset clears the text and moves the caret to the start.
func (e *Entry) Reset() {
	e.buf = e.buf[:0]
	e.cursor = 0
}

// Insert adds r at the caret. It reports false when r is not allowed or
// the box is full.
func (e *Entry) Insert(r rune) bool {
	if !(r >= '0' && r <= '9') && r != '-' && r != '+' {
		return false
	}
	if len(e.buf) >= maxEntryLen {
		return false
	}
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
	return true
}

// Backspace deletes the rune before the caret.
func (e *Entry) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
}

// Delete deletes the rune after the caret.
func (e *Entry) Delete() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

func (e *Entry) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *Entry) Right() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

func (e *Entry) String() string { return string(e.buf) }

// BeforeCaret returns the text left of the caret, for positioning it.
func (e *Entry) BeforeCaret() string { return string(e.buf[:e.cursor]) }
