package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/coingrab/internal/application/system"
)

// FileName is the config file the loaders look for.
const FileName = "game.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

//go:embed defaults.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() *GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return &cfg
}

// Parse overlays YAML data onto the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, FileName), err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(l.basePath, FileName), err)
	}
	return cfg, nil
}

// Load resolves the configuration.
// Search order: customPath -> ~/.coingrab/game.yaml -> ./configs/game.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func Load(customPath string) (*GameConfig, error) {
	if customPath != "" {
		dir, name := filepath.Split(customPath)
		if dir == "" {
			dir = "."
		}
		data, err := fs.ReadFile(os.DirFS(dir), name)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if dir := userConfigDir(); dir != "" {
		if cfg, err := NewLoader(dir).LoadGame(); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := NewLoader("configs").LoadGame(); err == nil {
		return cfg, nil
	}

	return Default(), nil
}

// userConfigDir returns ~/.coingrab, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coingrab")
}

// Validate checks that sizes and rates are usable.
func (c *GameConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Clock.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Clock.TickRate)
	case c.Clock.MaxFrameTime < 0:
		return fmt.Errorf("%w: max_frame_time must not be negative", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed must not be negative", ErrInvalid)
	case c.Coins.Count < 0:
		return fmt.Errorf("%w: coin count must not be negative", ErrInvalid)
	case c.Coins.Width <= 0 || c.Coins.Height <= 0:
		return fmt.Errorf("%w: coin size must be positive", ErrInvalid)
	}
	return nil
}

// Bindings converts the key name lists into input bindings.
func (c ControlsConfig) Bindings() system.Bindings {
	return system.Bindings{
		Up:      toKeys(c.Up),
		Down:    toKeys(c.Down),
		Left:    toKeys(c.Left),
		Right:   toKeys(c.Right),
		Confirm: toKeys(c.Confirm),
		Cancel:  toKeys(c.Cancel),
	}
}

func toKeys(names []string) []system.Key {
	keys := make([]system.Key, 0, len(names))
	for _, n := range names {
		keys = append(keys, system.Key(n))
	}
	return keys
}
