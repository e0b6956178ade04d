// Package config loads explorer settings from a YAML file, overlaying them
// on built-in defaults so a partial file is enough.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	mandel "mandelview"
)

// Duration wraps time.Duration with YAML support for strings like "16ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config is the full explorer configuration.
type Config struct {
	Window    Window    `yaml:"window"`
	View      View      `yaml:"view"`
	Frame     Frame     `yaml:"frame"`
	Export    Export    `yaml:"export"`
	Remote    Remote    `yaml:"remote"`
	Bookmarks Bookmarks `yaml:"bookmarks"`
}

// Window configures the desktop window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// View selects the starting view: a landmark by name, or explicit
// coordinates when Landmark is empty.
type View struct {
	Landmark   string  `yaml:"landmark"`
	Re         float64 `yaml:"re"`
	Im         float64 `yaml:"im"`
	RealDomain float64 `yaml:"real_domain"`
	Iterations uint32  `yaml:"iterations"`
}

// Frame configures the render scheduler.
type Frame struct {
	Budget Duration `yaml:"budget"`
}

// Export configures PNG export.
type Export struct {
	Path string `yaml:"path"`
}

// Remote configures the browser view of the live render.
type Remote struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Bookmarks configures the bookmark database. An empty path disables
// bookmarking.
type Bookmarks struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration: an 800x600 window on the home
// view with a 60 Hz render budget.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "mandelview",
		},
		View: View{
			RealDomain: mandel.DefaultRealDomain,
			Iterations: mandel.DefaultMaxIter,
		},
		Frame: Frame{
			Budget: Duration(16 * time.Millisecond),
		},
		Export: Export{
			Path: "out.png",
		},
		Remote: Remote{
			Listen: "localhost:8080",
		},
		Bookmarks: Bookmarks{
			Path: "bookmarks.db",
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: both dimensions must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Frame.Budget <= 0 {
		return fmt.Errorf("frame budget %s: must be positive", time.Duration(c.Frame.Budget))
	}
	if c.View.Landmark != "" {
		if _, ok := mandel.LandmarkByName(c.View.Landmark); !ok {
			return fmt.Errorf("unknown landmark %q", c.View.Landmark)
		}
	} else {
		if c.View.RealDomain <= 0 {
			return fmt.Errorf("real_domain %v: must be positive", c.View.RealDomain)
		}
		if c.View.Iterations < mandel.MinIter || c.View.Iterations > mandel.MaxIter {
			return fmt.Errorf("iterations %d: must be in [%d, %d]", c.View.Iterations, mandel.MinIter, mandel.MaxIter)
		}
	}
	return nil
}

// Params resolves the configured starting view at the given buffer size.
func (c Config) Params(width, height uint32) mandel.Params {
	if c.View.Landmark != "" {
		if l, ok := mandel.LandmarkByName(c.View.Landmark); ok {
			return l.View(width, height)
		}
	}
	return mandel.Params{
		Center:     complex(c.View.Re, c.View.Im),
		Width:      width,
		Height:     height,
		RealDomain: c.View.RealDomain,
		Iterations: c.View.Iterations,
	}
}
