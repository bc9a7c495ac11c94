package config

import (
	"encoding/json"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Window   WindowConfig   `yaml:"window" json:"window"`
	World    WorldConfig    `yaml:"world" json:"world"`
	Clock    ClockConfig    `yaml:"clock" json:"clock"`
	Player   PlayerConfig   `yaml:"player" json:"player"`
	Coins    CoinConfig     `yaml:"coins" json:"coins"`
	Controls ControlsConfig `yaml:"controls" json:"controls"`
	Seed     int64          `yaml:"seed" json:"seed"` // 0 = derive from the current time
}

// WindowConfig sizes the OS window. The world is scaled to fit it.
type WindowConfig struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Title  string `yaml:"title" json:"title"`
}

// WorldConfig is the fixed virtual resolution the simulation runs in.
type WorldConfig struct {
	Width       float64  `yaml:"width" json:"width"`
	Height      float64  `yaml:"height" json:"height"`
	GridSpacing float64  `yaml:"grid_spacing" json:"grid_spacing"`
	Background  HexColor `yaml:"background" json:"background"`
	Grid        HexColor `yaml:"grid" json:"grid"`
}

type ClockConfig struct {
	TickRate     int     `yaml:"tick_rate" json:"tick_rate"`
	MaxFrameTime float64 `yaml:"max_frame_time" json:"max_frame_time"` // seconds, 0 = unbounded catch-up
}

type PlayerConfig struct {
	Width  float64  `yaml:"width" json:"width"`
	Height float64  `yaml:"height" json:"height"`
	Speed  float64  `yaml:"speed" json:"speed"` // world units per second
	Color  HexColor `yaml:"color" json:"color"`
}

type CoinConfig struct {
	Count  int      `yaml:"count" json:"count"`
	Width  float64  `yaml:"width" json:"width"`
	Height float64  `yaml:"height" json:"height"`
	Reward int      `yaml:"reward" json:"reward"`
	Color  HexColor `yaml:"color" json:"color"`
}

// ControlsConfig lists platform key names per action.
type ControlsConfig struct {
	Up      []string `yaml:"up" json:"up"`
	Down    []string `yaml:"down" json:"down"`
	Left    []string `yaml:"left" json:"left"`
	Right   []string `yaml:"right" json:"right"`
	Confirm []string `yaml:"confirm" json:"confirm"`
	Cancel  []string `yaml:"cancel" json:"cancel"`
}

// HexColor is an opaque color written as "#rrggbb" in YAML.
type HexColor struct {
	color.RGBA
}

// ParseHexColor parses "#rrggbb" (or "#rgb").
func ParseHexColor(s string) (HexColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return HexColor{color.RGBA{R: r, G: g, B: b, A: 255}}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HexColor) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

// MarshalJSON writes the color in the same "#rrggbb" form as YAML.
func (h HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h HexColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", h.R, h.G, h.B)
}
