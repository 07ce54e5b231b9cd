// Package config provides configuration for the intersection demo.
// Settings are loaded from a JSON file so the demo can be tuned without
// rebuilding.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/linecross/internal/hud"
	"chosenoffset.com/linecross/internal/scene"
)

// Config holds all tunable settings for the demo
type Config struct {
	// Window
	Screen ScreenConfig `json:"screen"`

	// Rotating probe segment
	Probe ProbeConfig `json:"probe"`

	// Wall generation
	Walls WallConfig `json:"walls"`

	// HUD overlay
	HUD hud.Config `json:"hud"`
}

// ScreenConfig defines the window geometry
type ScreenConfig struct {
	Width     int    `json:"width"`     // Logical screen width in pixels
	Height    int    `json:"height"`    // Logical screen height in pixels
	Resizable bool   `json:"resizable"` // Allow window resizing
	Title     string `json:"title"`     // Window title
}

// ProbeConfig defines the mouse-following probe segment
type ProbeConfig struct {
	Length        float64 `json:"length"`         // Segment length in pixels
	RotationSpeed float64 `json:"rotation_speed"` // Radians per tick
	LengthStep    float64 `json:"length_step"`    // Length change per arrow-key tick
	MinLength     float64 `json:"min_length"`     // Lower bound for length adjustment
	MaxLength     float64 `json:"max_length"`     // Upper bound for length adjustment
}

// WallConfig defines random wall generation
type WallConfig struct {
	Count  int     `json:"count"`  // Number of random walls
	Margin float64 `json:"margin"` // Inset from screen edges for wall endpoints
	Seed   int64   `json:"seed"`   // Random seed; 0 means time-based
}

// DefaultConfig returns sensible defaults for the demo
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:     800,
			Height:    600,
			Resizable: false,
			Title:     "linecross - segment intersection demo",
		},
		Probe: ProbeConfig{
			Length:        220,
			RotationSpeed: 0.02,
			LengthStep:    4,
			MinLength:     40,
			MaxLength:     600,
		},
		Walls: WallConfig{
			Count:  8,
			Margin: 50,
			Seed:   0,
		},
		HUD: *hud.DefaultConfig(),
	}
}

// LoadConfig loads demo config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read demo config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}

	return config, nil
}

// Validate rejects settings the demo cannot run with.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	// The generator clamps the margin, so the screen diagonal is the hard
	// floor on what can hold a wall at all.
	if math.Hypot(float64(c.Screen.Width), float64(c.Screen.Height)) < scene.MinWallLength {
		return fmt.Errorf("screen %dx%d is too small to hold a %vpx wall",
			c.Screen.Width, c.Screen.Height, scene.MinWallLength)
	}
	if c.Walls.Margin < 0 {
		return fmt.Errorf("wall margin must not be negative, got %v", c.Walls.Margin)
	}
	if c.Probe.Length <= 0 {
		return fmt.Errorf("probe length must be positive, got %v", c.Probe.Length)
	}
	if c.Probe.MinLength > c.Probe.MaxLength {
		return fmt.Errorf("probe min length %v exceeds max length %v", c.Probe.MinLength, c.Probe.MaxLength)
	}
	if c.Walls.Count < 0 {
		return fmt.Errorf("wall count must not be negative, got %d", c.Walls.Count)
	}
	return nil
}
