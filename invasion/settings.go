package invasion

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// RGB is an opaque color that decodes from a YAML `[r, g, b]` sequence.
type RGB [3]uint8

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}.RGBA()
}

// Settings holds every tunable of the game. It is built once at startup and
// shared by pointer; nothing in the game writes to it afterwards.
type Settings struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	BgColor      RGB `yaml:"bg_color"`

	ShipSpeed  float64 `yaml:"ship_speed"`
	ShipLimit  int     `yaml:"ship_limit"`
	ShipWidth  int     `yaml:"ship_width"`
	ShipHeight int     `yaml:"ship_height"`
	ShipColor  RGB     `yaml:"ship_color"`

	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletWidth    int     `yaml:"bullet_width"`
	BulletHeight   int     `yaml:"bullet_height"`
	BulletColor    RGB     `yaml:"bullet_color"`
	BulletsAllowed int     `yaml:"bullets_allowed"`

	AlienSpeed     float64 `yaml:"alien_speed"`
	AlienWidth     int     `yaml:"alien_width"`
	AlienHeight    int     `yaml:"alien_height"`
	AlienColor     RGB     `yaml:"alien_color"`
	FleetDropSpeed int     `yaml:"fleet_drop_speed"`
	FleetDirection int     `yaml:"fleet_direction"`

	ShipHitPause time.Duration `yaml:"ship_hit_pause"`
}

// DefaultSettings returns the stock game configuration.
func DefaultSettings() *Settings {
	return &Settings{
		ScreenWidth:  1200,
		ScreenHeight: 800,
		BgColor:      RGB{50, 50, 50},

		ShipSpeed:  1.5,
		ShipLimit:  3,
		ShipWidth:  60,
		ShipHeight: 48,
		ShipColor:  RGB{230, 230, 230},

		BulletSpeed:    1.5,
		BulletWidth:    3,
		BulletHeight:   15,
		BulletColor:    RGB{200, 200, 200},
		BulletsAllowed: 10,

		AlienSpeed:     1.0,
		AlienWidth:     60,
		AlienHeight:    56,
		AlienColor:     RGB{120, 220, 120},
		FleetDropSpeed: 10,
		FleetDirection: 1,

		ShipHitPause: 500 * time.Millisecond,
	}
}

// LoadSettings reads a YAML file and overlays it on DefaultSettings.
// Keys missing from the file keep their default value.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings over the defaults and validates the result.
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WithScreen returns a copy of s with the screen size replaced.
func (s *Settings) WithScreen(width, height int) *Settings {
	c := *s
	c.ScreenWidth = width
	c.ScreenHeight = height
	return &c
}

// Validate reports the first setting that would make the game unplayable.
func (s *Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidSettings, s.ScreenWidth, s.ScreenHeight)
	case s.ShipWidth <= 0 || s.ShipHeight <= 0:
		return fmt.Errorf("%w: ship size %dx%d", ErrInvalidSettings, s.ShipWidth, s.ShipHeight)
	case s.AlienWidth <= 0 || s.AlienHeight <= 0:
		return fmt.Errorf("%w: alien size %dx%d", ErrInvalidSettings, s.AlienWidth, s.AlienHeight)
	case s.BulletWidth <= 0 || s.BulletHeight <= 0:
		return fmt.Errorf("%w: bullet size %dx%d", ErrInvalidSettings, s.BulletWidth, s.BulletHeight)
	case s.ShipLimit <= 0:
		return fmt.Errorf("%w: ship_limit must be positive, got %d", ErrInvalidSettings, s.ShipLimit)
	case s.BulletsAllowed < 0:
		return fmt.Errorf("%w: bullets_allowed must not be negative, got %d", ErrInvalidSettings, s.BulletsAllowed)
	case s.ShipSpeed < 0 || s.BulletSpeed < 0 || s.AlienSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidSettings)
	case s.FleetDropSpeed < 0:
		return fmt.Errorf("%w: fleet_drop_speed must not be negative, got %d", ErrInvalidSettings, s.FleetDropSpeed)
	case s.FleetDirection != 1 && s.FleetDirection != -1:
		return fmt.Errorf("%w: fleet_direction must be 1 or -1, got %d", ErrInvalidSettings, s.FleetDirection)
	case s.ShipHitPause < 0:
		return fmt.Errorf("%w: ship_hit_pause must not be negative", ErrInvalidSettings)
	}
	return nil
}
