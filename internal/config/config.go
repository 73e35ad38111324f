// Package config loads the YAML configuration shared by the command-line
// tools. The math packages themselves take no configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gamemath/internal/observability/log"
)

var (
	ErrInvalidEncoding = errors.New("invalid log encoding")
	ErrInvalidDemo     = errors.New("invalid demo settings")
)

type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Random RandomConfig `json:"random" yaml:"random"`
	Demo   DemoConfig   `json:"demo" yaml:"demo"`
}

type LogConfig struct {
	Level    string   `json:"level" yaml:"level"`
	Encoding string   `json:"encoding" yaml:"encoding"`
	Output   []string `json:"output,omitempty" yaml:"output,omitempty"`
}

// RandomConfig seeds vector.Rand. An empty seed uses the process-wide source.
type RandomConfig struct {
	Seed string `json:"seed" yaml:"seed"`
}

type DemoConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Points int `json:"points" yaml:"points"`

	RotationSpeed float32 `json:"rotation_speed" yaml:"rotation_speed"` // degrees per tick
	HueSpeed      float32 `json:"hue_speed" yaml:"hue_speed"`           // turns per tick
	MinMagnitude  float32 `json:"min_magnitude" yaml:"min_magnitude"`
	MaxMagnitude  float32 `json:"max_magnitude" yaml:"max_magnitude"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Demo: DemoConfig{
			Width:         960,
			Height:        640,
			Points:        64,
			RotationSpeed: 1.5,
			HueSpeed:      0.002,
			MinMagnitude:  40,
			MaxMagnitude:  200,
		},
	}
}

// LoadYAML reads a config from r on top of Default. An empty document
// yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile is LoadYAML on the named file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Log.Encoding)
	}

	d := c.Demo
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidDemo, d.Width, d.Height)
	}
	if d.Points < 0 {
		return fmt.Errorf("%w: %d points", ErrInvalidDemo, d.Points)
	}
	if d.MinMagnitude < 0 || d.MinMagnitude > d.MaxMagnitude {
		return fmt.Errorf("%w: magnitude range [%v, %v]", ErrInvalidDemo, d.MinMagnitude, d.MaxMagnitude)
	}
	return nil
}

// LogOptions converts the log section for log.New.
func (c *Config) LogOptions() (log.Options, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.Options{}, err
	}
	return log.Options{
		Level:    level,
		Encoding: c.Log.Encoding,
		Output:   c.Log.Output,
	}, nil
}
