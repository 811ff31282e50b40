package picker

import (
	"testing"
	"unicode/utf8"
)

func TestEntryAcceptsOnlyNumbers(t *testing.T) {
	var e Entry
	for _, r := range "1é2x€3" {
		e.Insert(r)
	}
	if got := e.String(); got != "123" {
		t.Fatalf("String() = %q, want %q", got, "123")
	}
	if !e.Insert('-') || !e.Insert('+') {
		t.Fatalf("signs should be accepted")
	}
}

func TestEntryEditing(t *testing.T) {
	var e Entry
	for _, r := range "125" {
		e.Insert(r)
	}
	e.Left()
	e.Insert('0')
	if got := e.String(); got != "1205" {
		t.Fatalf("insert mid-text: %q", got)
	}
	if got := e.BeforeCaret(); got != "120" {
		t.Fatalf("BeforeCaret() = %q", got)
	}
	e.Backspace()
	e.Delete()
	if got := e.String(); got != "12" {
		t.Fatalf("after backspace and delete: %q", got)
	}
	e.Right()
	e.Right()
	e.Delete()
	e.Left()
	e.Left()
	e.Left()
	e.Backspace()
	if got := e.String(); got != "12" {
		t.Fatalf("edits at the ends should be no-ops, got %q", got)
	}
	if !utf8.ValidString(e.String()) {
		t.Fatalf("invalid UTF-8 %q", e.String())
	}
	e.Reset()
	if e.String() != "" || e.BeforeCaret() != "" {
		t.Fatalf("Reset left %q", e.String())
	}
}

func TestEntryIsBounded(t *testing.T) {
	var e Entry
	for i := 0; i < 20; i++ {
		e.Insert('9')
	}
	if n := len(e.String()); n != maxEntryLen {
		t.Fatalf("len = %d, want %d", n, maxEntryLen)
	}
}
