package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/sevenseg"
)

const (
	minDimension = 1
	maxDimension = 16384
)

// Config holds the demo's render settings, loadable from a TOML file.
type Config struct {
	Text       string `toml:"text"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Color      string `toml:"color"`
	Background string `toml:"background"`
	Skew       string `toml:"skew"` // "none", "traditional", or a shear factor
	Output     string `toml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Text:       "0123456789",
		Width:      800,
		Height:     120,
		Color:      "#FF2A00",
		Background: "#140A08",
		Skew:       "traditional",
		Output:     "readout.png",
	}
}

// Load reads a TOML config file, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return NormalizeAndValidate(cfg)
}

func NormalizeAndValidate(cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	sanitized := *cfg
	if sanitized.Width < minDimension || sanitized.Width > maxDimension {
		return nil, fmt.Errorf("width %d out of range [%d, %d]", sanitized.Width, minDimension, maxDimension)
	}
	if sanitized.Height < minDimension || sanitized.Height > maxDimension {
		return nil, fmt.Errorf("height %d out of range [%d, %d]", sanitized.Height, minDimension, maxDimension)
	}
	if sanitized.Output == "" {
		return nil, fmt.Errorf("output path must not be empty")
	}
	if _, err := parseSkew(sanitized.Skew); err != nil {
		return nil, err
	}
	return &sanitized, nil
}

// parseSkew maps the config string to a shear factor.
func parseSkew(s string) (sevenseg.Skew, error) {
	switch s {
	case "", "none":
		return sevenseg.SkewNone, nil
	case "traditional":
		return sevenseg.SkewTraditional, nil
	}
	c, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sevenseg.SkewNone, fmt.Errorf("skew %q: want none, traditional, or a number", s)
	}
	return sevenseg.Skew(c), nil
}
