package colormodel

import (
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func TestToHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want Hex
	}{
		{Default, "#9b87f5"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{5, 10, 15}, "#050a0f"},
		{RGB{255, 0, 0}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := ToHex(tt.in); got != tt.want {
			t.Errorf("ToHex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToHexShape(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	forEachRGB(t, func(c RGB) {
		h := ToHex(c)
		if !re.MatchString(string(h)) {
			t.Fatalf("ToHex(%v) = %q", c, h)
		}
		back, err := ParseHex(string(h))
		if err != nil || back != c {
			t.Fatalf("ParseHex(%q) = %v, %v", h, back, err)
		}
	})
}

func TestParseHex(t *testing.T) {
	good := map[string]RGB{
		"#9b87f5":   Default,
		"9B87F5":    Default,
		" #9B87f5 ": Default,
		"#000000":   {},
	}
	for in, want := range good {
		got, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseHex(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "#", "#fff", "#12345", "#1234567", "#gg0000", "#-12345"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}

func TestParseHexErrorsCarryStack(t *testing.T) {
	for _, in := range []string{"#fff", "#gg0000"} {
		_, err := ParseHex(in)
		if _, ok := err.(stackTracer); !ok {
			t.Errorf("ParseHex(%q) error %T has no stack trace", in, err)
		}
	}
}

func TestHexUpper(t *testing.T) {
	if got := ToHex(Default).Upper(); got != "#9B87F5" {
		t.Fatalf("Upper() = %q", got)
	}
}

func TestRGBYAMLUsesHex(t *testing.T) {
	type doc struct {
		Color RGB `yaml:"color"`
	}
	out, err := yaml.Marshal(doc{Color: Default})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if back.Color != Default {
		t.Fatalf("got %v from %q", back.Color, out)
	}
	if err := yaml.Unmarshal([]byte("color: nope\n"), &back); err == nil {
		t.Fatalf("expected error for malformed color")
	}
}
