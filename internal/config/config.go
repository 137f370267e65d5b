// Package config handles gizmo tool configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

// Config holds all tool settings.
type Config struct {
	Draw    DrawConfig    `yaml:"draw"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DrawConfig holds defaults applied to every drawn shape.
type DrawConfig struct {
	Segments  int           `yaml:"segments"`   // points per full circle
	PointSize float32       `yaml:"point_size"` // span of point markers
	Duration  time.Duration `yaml:"duration"`   // line lifetime, 0 = one frame
	Color     string        `yaml:"color"`      // name or #rrggbb[aa]
}

// OutputConfig controls how drawn lines are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // "text" or "yaml"
	Precision int    `yaml:"precision"` // decimals in text output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Draw: DrawConfig{
			Segments:  30,
			PointSize: 0.1,
			Duration:  0,
			Color:     "white",
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the tool cannot use.
func (c *Config) Validate() error {
	if c.Draw.Segments < 0 {
		return fmt.Errorf("draw.segments must not be negative, got %d", c.Draw.Segments)
	}
	if c.Draw.PointSize < 0 {
		return fmt.Errorf("draw.point_size must not be negative, got %v", c.Draw.PointSize)
	}
	if _, err := gizmo.ParseColor(c.Draw.Color); err != nil {
		return fmt.Errorf("draw.color: %w", err)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("output.precision must not be negative, got %d", c.Output.Precision)
	}
	switch c.Output.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("output.format must be text or yaml, got %q", c.Output.Format)
	}
	return nil
}

// DrawColor returns the parsed default color, white if it does not parse.
func (c *Config) DrawColor() gizmo.Color {
	col, err := gizmo.ParseColor(c.Draw.Color)
	if err != nil {
		return gizmo.White
	}
	return col
}

// DrawerOptions converts the draw section into gizmo options.
func (c *Config) DrawerOptions() gizmo.Options {
	return gizmo.Options{
		Segments:  c.Draw.Segments,
		PointSize: c.Draw.PointSize,
		Duration:  c.Draw.Duration,
	}
}
