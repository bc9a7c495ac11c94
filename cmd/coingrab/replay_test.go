package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coingrab/internal/application/game"
	"github.com/younwookim/coingrab/internal/application/replay"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
)

// recordSession plays a short scripted session and saves it to path
func recordSession(t *testing.T, path string) game.Snapshot {
	t.Helper()
	cfg := config.Default()
	session, err := game.NewSession(cfg, 5, log.New(io.Discard))
	require.NoError(t, err)
	rec := replay.NewRecorder(session.Seed, cfg)

	script := map[int][]system.Event{
		1:  {{Kind: system.EventMouseDown, X: 400, Y: 300}},
		2:  {{Kind: system.EventMouseUp, X: 400, Y: 300}, {Kind: system.EventKeyDown, Key: system.KeyD}},
		60: {{Kind: system.EventKeyUp, Key: system.KeyD}},
	}
	for i := 0; i < 90; i++ {
		now := time.Duration(i) * 16 * time.Millisecond
		session.Apply(script[i])
		rec.RecordFrame(now, script[i])
		_, err := session.Frame(now)
		require.NoError(t, err)
	}

	require.NoError(t, rec.Save(path))
	return session.Snapshot()
}

func TestReplayCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	want := recordSession(t, path)

	cfgPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 0\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"replay", path, "--config", cfgPath, "--log-level", "error"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "frames:     90\n")
	assert.Contains(t, out.String(), fmt.Sprintf("steps:      %d\n", want.Steps))
	assert.Contains(t, out.String(), fmt.Sprintf("scene:      %s\n", want.Scene))
	assert.Contains(t, out.String(), fmt.Sprintf("score:      %d\n", want.Score))
	assert.Contains(t, out.String(), fmt.Sprintf("coins left: %d\n", want.CoinsLeft))
}

func TestReplayCmd_StartsInGame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	// ten idle frames recorded straight into a round
	rec := replay.NewRecorder(5, config.Default())
	rec.SetStart("game")
	for i := 0; i < 10; i++ {
		rec.RecordFrame(time.Duration(i)*16*time.Millisecond, nil)
	}
	require.NoError(t, rec.Save(path))

	cfgPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 0\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"replay", path, "--config", cfgPath, "--log-level", "error"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "scene:      game\n")
	assert.NotContains(t, out.String(), "last round:")
}

// A session recorded with local overrides must replay the same way on a
// machine that only has the defaults.
func TestReplayCmd_UsesRecordedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	cfg := config.Default()
	cfg.Coins.Count = 12
	cfg.Clock.MaxFrameTime = 0.25

	session, err := game.NewSession(cfg, 5, log.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, session.Registry().SetScene(state.StatePlaying))
	rec := replay.NewRecorder(session.Seed, cfg)
	rec.SetStart(session.Current().String())

	// nine quick frames, then a one second stall the frame cap has to absorb
	for i := 0; i < 10; i++ {
		now := time.Duration(i) * 16 * time.Millisecond
		if i == 9 {
			now += time.Second
		}
		rec.RecordFrame(now, nil)
		_, err := session.Frame(now)
		require.NoError(t, err)
	}
	require.NoError(t, rec.Save(path))
	want := session.Snapshot()
	require.Equal(t, 12, want.CoinsLeft+want.Score/cfg.Coins.Reward)

	cfgPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 0\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"replay", path, "--config", cfgPath, "--log-level", "error"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), fmt.Sprintf("coins left: %d\n", want.CoinsLeft))
	assert.Contains(t, out.String(), fmt.Sprintf("steps:      %d\n", want.Steps))
	assert.Contains(t, out.String(), fmt.Sprintf("score:      %d\n", want.Score))
}

func TestReplayCmd_MissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "nope.json"), "--log-level", "error"})
	assert.Error(t, root.Execute())
}

func TestReplayCmd_BadLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"replay", "x.json", "--log-level", "loud"})
	assert.Error(t, root.Execute())
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(3), resolveSeed(3, 9))
	assert.Equal(t, int64(9), resolveSeed(0, 9))
	assert.NotZero(t, resolveSeed(0, 0))
}

func TestStartScene(t *testing.T) {
	s, err := startScene("game")
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, s)

	s, err = startScene("menu")
	require.NoError(t, err)
	assert.Equal(t, state.StateMenu, s)

	_, err = startScene("pause")
	assert.Error(t, err)
	_, err = startScene("credits")
	assert.Error(t, err)
}
