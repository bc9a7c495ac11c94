package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coingrab/internal/application/system"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800.0, cfg.World.Width)
	assert.Equal(t, 600.0, cfg.World.Height)
	assert.Equal(t, 32.0, cfg.World.GridSpacing)
	assert.Equal(t, 60, cfg.Clock.TickRate)
	assert.Equal(t, 0.0, cfg.Clock.MaxFrameTime)
	assert.Equal(t, 24.0, cfg.Player.Width)
	assert.Equal(t, 240.0, cfg.Player.Speed)
	assert.Equal(t, 10, cfg.Coins.Count)
	assert.Equal(t, 10, cfg.Coins.Reward)
	assert.Equal(t, uint8(0xff), cfg.Coins.Color.R)
	assert.Equal(t, uint8(0xd5), cfg.Coins.Color.G)
	assert.Equal(t, uint8(255), cfg.Coins.Color.A)
	require.NoError(t, cfg.Validate())
}

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, 12, cfg.Coins.Count)
	// untouched keys keep their defaults
	assert.Equal(t, 800.0, cfg.World.Width)
	assert.Equal(t, 240.0, cfg.Player.Speed)
}

func TestFSLoader_LoadGame(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(`
player:
  speed: 120
  color: "#ff0000"
seed: 42
`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Player.Speed)
	assert.Equal(t, uint8(255), cfg.Player.Color.R)
	assert.Equal(t, uint8(0), cfg.Player.Color.G)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 24.0, cfg.Player.Width)
}

func TestFSLoader_Missing(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadGame()
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero world", "world: {width: 0}"},
		{"negative tick rate", "clock: {tick_rate: -1}"},
		{"negative max frame time", "clock: {max_frame_time: -0.5}"},
		{"negative coins", "coins: {count: -3}"},
		{"zero player", "player: {height: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_BadColor(t *testing.T) {
	_, err := Parse([]byte(`coins: {color: "gold"}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("coins: {count: 3}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Coins.Count)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestControls_Bindings(t *testing.T) {
	b := Default().Controls.Bindings()

	assert.Equal(t, []system.Key{system.KeyArrowUp, system.KeyW}, b.Up)
	assert.Equal(t, []system.Key{system.KeyEnter}, b.Confirm)
	assert.Equal(t, []system.Key{system.KeyEscape}, b.Cancel)
}

func TestHexColor_MarshalYAML(t *testing.T) {
	c, err := ParseHexColor("#4fc3f7")
	require.NoError(t, err)

	out, err := c.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "#4fc3f7", out)
}

func TestGameConfig_JSONKeepsColorsAsHex(t *testing.T) {
	cfg := Default()
	cfg.Coins.Count = 12

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"background":"#10131a"`)

	var back GameConfig
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}
