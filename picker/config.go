package picker

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/example/chromapick/colormodel"
)

// Config holds user settings read from chromapick.yml.
type Config struct {
	DefaultColor  colormodel.RGB `yaml:"default_color"`
	ToastDuration time.Duration  `yaml:"toast_duration"`
	FontPath      string         `yaml:"font_path"`
	FontSize      float64        `yaml:"font_size"`
	WindowWidth   int            `yaml:"window_width"`
	WindowHeight  int            `yaml:"window_height"`
	StatePath     string         `yaml:"state_path"`
}

const (
	minWindowWidth  = 360
	minWindowHeight = 300

	// toast_duration is a Go duration string ("2s", "1500ms"). A bare
	// number decodes as nanoseconds, so anything this short is treated
	// as a unit mistake.
	minToastDuration = 100 * time.Millisecond
)

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DefaultColor:  colormodel.Default,
		ToastDuration: DefaultToastDuration,
		FontPath:      "res/Roboto-Regular.ttf",
		FontSize:      14,
		WindowWidth:   560,
		WindowHeight:  420,
		StatePath:     "state.yml",
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "decode config %s", path)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.ToastDuration < minToastDuration {
		c.ToastDuration = def.ToastDuration
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.WindowWidth < minWindowWidth {
		c.WindowWidth = minWindowWidth
	}
	if c.WindowHeight < minWindowHeight {
		c.WindowHeight = minWindowHeight
	}
	if c.StatePath == "" {
		c.StatePath = def.StatePath
	}
}
