package picker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/chromapick/colormodel"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPicker(t *testing.T) (*Picker, *MemoryClipboard, *fakeClock) {
	t.Helper()
	clip := &MemoryClipboard{}
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	p := New(WithClipboard(clip), WithClock(clock.Now))
	return p, clip, clock
}

func TestNewStartsOnDefault(t *testing.T) {
	p, _, _ := newTestPicker(t)
	if p.Color() != colormodel.Default {
		t.Fatalf("expected default color, got %v", p.Color())
	}
	if p.Hex() != "#9b87f5" {
		t.Fatalf("expected #9b87f5, got %s", p.Hex())
	}
}

func TestSetChannelDerivesHSLAndHex(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.Set(colormodel.RGB{})
	p.SetChannel(colormodel.Red, 255)
	if got := p.HSL(); got != (colormodel.HSL{H: 0, S: 100, L: 50}) {
		t.Fatalf("HSL after red = %+v", got)
	}
	if got := p.Hex(); got != "#ff0000" {
		t.Fatalf("Hex after red = %s", got)
	}
	p.SetChannel(colormodel.Green, 255)
	if got := p.Color(); got != (colormodel.RGB{R: 255, G: 255}) {
		t.Fatalf("other channels not preserved: %v", got)
	}
}

func TestSetChannelTextClamps(t *testing.T) {
	p, _, _ := newTestPicker(t)
	tests := []struct {
		raw  string
		want uint8
	}{
		{"300", 255},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
		{"64px", 64},
	}
	for _, tt := range tests {
		p.SetChannelText(colormodel.Blue, tt.raw)
		if got := p.Color().B; got != tt.want {
			t.Errorf("SetChannelText(%q): blue = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNudgeSaturates(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.Set(colormodel.RGB{R: 250, G: 3})
	p.Nudge(colormodel.Red, 10)
	p.Nudge(colormodel.Green, -10)
	p.Nudge(colormodel.Blue, 1)
	if got := p.Color(); got != (colormodel.RGB{R: 255, G: 0, B: 1}) {
		t.Fatalf("Nudge result = %v", got)
	}
}

func TestOnChangeOnlyFiresOnChange(t *testing.T) {
	p, _, _ := newTestPicker(t)
	var seen []colormodel.RGB
	p.OnChange(func(c colormodel.RGB) { seen = append(seen, c) })

	p.Set(colormodel.Default)
	p.SetChannel(colormodel.Red, colormodel.Default.R)
	if len(seen) != 0 {
		t.Fatalf("expected no notifications for unchanged color, got %v", seen)
	}
	p.SetChannel(colormodel.Red, 0)
	p.Reset()
	if len(seen) != 2 || seen[1] != colormodel.Default {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestCopyFormats(t *testing.T) {
	p, clip, _ := newTestPicker(t)
	tests := []struct {
		f    Format
		want string
	}{
		{FormatRGB, "rgb(155, 135, 245)"},
		{FormatHSL, "hsl(251, 85%, 75%)"},
		{FormatHex, "#9b87f5"},
	}
	for _, tt := range tests {
		got, err := p.Copy(tt.f)
		if err != nil {
			t.Fatalf("Copy(%v): %v", tt.f, err)
		}
		if got != tt.want || clip.Text() != tt.want {
			t.Errorf("Copy(%v) = %q, clipboard %q, want %q", tt.f, got, clip.Text(), tt.want)
		}
	}
	if clip.Writes() != 3 {
		t.Fatalf("expected 3 writes, got %d", clip.Writes())
	}
}

func TestCopyPostsToastThatExpires(t *testing.T) {
	p, _, clock := newTestPicker(t)
	if _, err := p.Copy(FormatHex); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	active := p.Toasts().Active(clock.Now())
	if len(active) != 1 {
		t.Fatalf("expected one toast, got %d", len(active))
	}
	if active[0].Title != "Copied!" {
		t.Errorf("title = %q", active[0].Title)
	}
	if active[0].Description != "#9b87f5 has been copied to your clipboard." {
		t.Errorf("description = %q", active[0].Description)
	}

	clock.Advance(DefaultToastDuration - time.Millisecond)
	if n := len(p.Toasts().Active(clock.Now())); n != 1 {
		t.Fatalf("toast expired early")
	}
	clock.Advance(time.Millisecond)
	if n := len(p.Toasts().Active(clock.Now())); n != 0 {
		t.Fatalf("toast still active after its duration")
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	p, clip, clock := newTestPicker(t)
	clip.Err = errors.New("no clipboard")
	_, err := p.Copy(FormatRGB)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "copy RGB") || !strings.Contains(err.Error(), "no clipboard") {
		t.Fatalf("unexpected error text: %v", err)
	}
	active := p.Toasts().Active(clock.Now())
	if len(active) != 1 || active[0].Title != "Copy failed" {
		t.Fatalf("expected a failure toast, got %+v", active)
	}
}

func TestToastDurationOption(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := New(WithClock(clock.Now), WithToastDuration(5*time.Second), WithToastDuration(0))
	p.Notify("hi", "there")
	clock.Advance(4 * time.Second)
	if len(p.Toasts().Active(clock.Now())) != 1 {
		t.Fatalf("expected toast to live for 5s")
	}
}

func TestStateRestore(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.Set(colormodel.RGB{R: 1, G: 2, B: 3})
	p.SaveSwatch("tiny")
	s := p.State()

	q, _, _ := newTestPicker(t)
	q.Restore(s)
	if q.Color() != s.Color {
		t.Fatalf("color not restored: %v", q.Color())
	}
	if got, ok := q.Swatches().Last(); !ok || got.Name != "tiny" {
		t.Fatalf("swatch not restored: %+v", got)
	}
}

func TestPostAndDrain(t *testing.T) {
	p, _, _ := newTestPicker(t)
	done := make(chan struct{})
	go func() {
		p.Post(func() { p.SetChannel(colormodel.Red, 0) })
		close(done)
	}()
	<-done
	if n := p.Drain(); n != 1 {
		t.Fatalf("Drain ran %d functions, want 1", n)
	}
	if p.Color().R != 0 {
		t.Fatalf("posted update not applied")
	}
	if n := p.Drain(); n != 0 {
		t.Fatalf("second Drain ran %d", n)
	}
}

func TestPostDropsWhenFull(t *testing.T) {
	p, _, _ := newTestPicker(t)
	accepted := 0
	for i := 0; i < cap(p.posted)+5; i++ {
		if p.Post(func() {}) {
			accepted++
		}
	}
	if accepted != cap(p.posted) {
		t.Fatalf("accepted %d posts, want %d", accepted, cap(p.posted))
	}
}

func TestFormatString(t *testing.T) {
	if FormatRGB.String() != "RGB" || FormatHSL.String() != "HSL" || FormatHex.String() != "HEX" {
		t.Fatalf("unexpected format names")
	}
	if Format(7).String() != "Format(7)" {
		t.Fatalf("unexpected unknown format name %q", Format(7).String())
	}
}
