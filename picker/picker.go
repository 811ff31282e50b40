// Package picker holds the state behind the color picker window: the
// current color, the copy actions and their notifications, saved swatches,
// and the files they are persisted in. It has no rendering code so it can
// be driven and tested without a display.
package picker

import (
	"fmt"
	"time"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/example/chromapick/colormodel"
)

// Format selects which representation a copy action produces.
type Format int

const (
	FormatRGB Format = iota
	FormatHSL
	FormatHex
)

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatHSL:
		return "HSL"
	case FormatHex:
		return "HEX"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Picker owns the one authoritative RGB value. HSL and HEX are derived
// from it on every call.
//
// A Picker is not safe for concurrent use. Code running on other
// goroutines (file watchers) hands work over with Post; the UI loop runs
// it with Drain.
type Picker struct {
	color     colormodel.RGB
	def       colormodel.RGB
	swatches  *Swatches
	clip      Clipboard
	toasts    *Toasts
	toastFor  time.Duration
	now       func() time.Time
	listeners []func(colormodel.RGB)
	posted    chan func()
}

// Option configures a Picker.
type Option func(*Picker)

// WithClipboard sets the clipboard copy actions write to.
func WithClipboard(c Clipboard) Option {
	return func(p *Picker) { p.clip = c }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Picker) { p.now = now }
}

// WithToastDuration sets how long copy notifications stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(p *Picker) {
		if d > 0 {
			p.toastFor = d
		}
	}
}

// WithDefault sets the starting color, which Reset also returns to.
func WithDefault(c colormodel.RGB) Option {
	return func(p *Picker) {
		p.def = c
		p.color = c
	}
}

// New returns a Picker on the default color.
func New(opts ...Option) *Picker {
	p := &Picker{
		color:    colormodel.Default,
		def:      colormodel.Default,
		swatches: &Swatches{},
		clip:     &MemoryClipboard{},
		toasts:   NewToasts(defaultMaxToasts),
		toastFor: DefaultToastDuration,
		now:      time.Now,
		posted:   make(chan func(), 16),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// NewFromConfig builds a Picker from the loaded configuration.
func NewFromConfig(cfg Config, clip Clipboard) *Picker {
	return New(
		WithDefault(cfg.DefaultColor),
		WithToastDuration(cfg.ToastDuration),
		WithClipboard(clip),
	)
}

func (p *Picker) Color() colormodel.RGB { return p.color }

func (p *Picker) HSL() colormodel.HSL { return colormodel.ToHSL(p.color) }

func (p *Picker) Hex() colormodel.Hex { return colormodel.ToHex(p.color) }

func (p *Picker) Swatches() *Swatches { return p.swatches }

func (p *Picker) Toasts() *Toasts { return p.toasts }

// Now returns the picker's clock reading.
func (p *Picker) Now() time.Time { return p.now() }

// OnChange registers fn to run after every change of the current color.
func (p *Picker) OnChange(fn func(colormodel.RGB)) {
	p.listeners = append(p.listeners, fn)
}

// Set replaces the current color. Listeners only run when it differs.
func (p *Picker) Set(c colormodel.RGB) {
	if c == p.color {
		return
	}
	p.color = c
	for _, fn := range p.listeners {
		fn(c)
	}
}

// SetChannel replaces one channel, keeping the other two.
func (p *Picker) SetChannel(ch colormodel.Channel, v uint8) {
	p.Set(p.color.With(ch, v))
}

// SetChannelText applies raw numeric-entry text to one channel. Text that
// does not parse counts as 0; out-of-range numbers are clamped.
func (p *Picker) SetChannelText(ch colormodel.Channel, raw string) {
	p.SetChannel(ch, colormodel.ParseChannel(raw))
}

// Nudge adds delta to a channel, saturating at the channel bounds.
func (p *Picker) Nudge(ch colormodel.Channel, delta int) {
	v := int(p.color.Channel(ch)) + delta
	p.SetChannel(ch, colormodel.ClampChannel(float64(v)))
}

// Reset returns to the default color.
func (p *Picker) Reset() {
	p.Set(p.def)
}

// Text returns the copy text for f.
func (p *Picker) Text(f Format) string {
	switch f {
	case FormatHSL:
		return p.HSL().CSS()
	case FormatHex:
		return p.Hex().CSS()
	default:
		return p.color.CSS()
	}
}

// Copy writes the representation f of the current color to the clipboard
// and posts a notification about it.
func (p *Picker) Copy(f Format) (string, error) {
	text := p.Text(f)
	if err := p.clip.WriteAll(text); err != nil {
		p.notify("Copy failed", fmt.Sprintf("Could not copy %s to the clipboard.", f))
		return "", errors.Wrapf(err, "copy %s", f)
	}
	log.Infof("copied %s: %s", f, text)
	p.notify("Copied!", fmt.Sprintf("%s has been copied to your clipboard.", text))
	return text, nil
}

// Notify posts a notification with the configured lifetime.
func (p *Picker) Notify(title, description string) {
	p.notify(title, description)
}

func (p *Picker) notify(title, description string) {
	p.toasts.Push(Toast{
		Title:       title,
		Description: description,
		Expires:     p.now().Add(p.toastFor),
	})
}

// SaveSwatch stores the current color in the swatch list.
func (p *Picker) SaveSwatch(name string) Swatch {
	s := p.swatches.Add(name, p.color)
	p.notify("Saved", fmt.Sprintf("%s saved as %q.", p.Hex(), s.Name))
	return s
}

// State snapshots what is persisted between runs.
func (p *Picker) State() State {
	return State{Color: p.color, Swatches: p.swatches.List()}
}

// Restore applies a persisted State.
func (p *Picker) Restore(s State) {
	p.swatches.Replace(s.Swatches)
	p.Set(s.Color)
}

// Post queues fn to run on the goroutine that calls Drain. It never
// blocks; when the queue is full fn is dropped and false is returned.
func (p *Picker) Post(fn func()) bool {
	select {
	case p.posted <- fn:
		return true
	default:
		log.Warnf("picker: post queue full, dropping update")
		return false
	}
}

// Drain runs every queued function and reports how many ran.
func (p *Picker) Drain() int {
	n := 0
	for {
		select {
		case fn := <-p.posted:
			fn()
			n++
		default:
			return n
		}
	}
}
