package picker

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard is where copy actions put their text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend exists on this system
// (xclip, xsel or wl-copy on Linux).
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// MemoryClipboard keeps the last written text in memory. It stands in for
// the system clipboard in tests and on headless machines.
type MemoryClipboard struct {
	mu     sync.Mutex
	text   string
	writes int
	Err    error
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	m.writes++
	return nil
}

// Text returns the last text written.
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many successful writes happened.
func (m *MemoryClipboard) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// DetectClipboard returns the system clipboard when one is usable and an
// in-memory one otherwise.
func DetectClipboard() Clipboard {
	sys := SystemClipboard{}
	if sys.Available() {
		return sys
	}
	return &MemoryClipboard{}
}
