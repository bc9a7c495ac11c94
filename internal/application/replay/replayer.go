package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
)

var (
	// ErrEmpty is returned for a replay without frames.
	ErrEmpty = errors.New("replay has no frames")
	// ErrNoConfig is returned for a replay that does not carry its config,
	// such as one written before the format stored it.
	ErrNoConfig = errors.New("replay has no config")
)

// Driver is the part of the game loop a replay feeds.
type Driver interface {
	Apply(events []system.Event)
	Frame(now time.Duration) (int, error)
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmpty)
	}
	if data.Config == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoConfig)
	}
	if err := data.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &data, nil
}

// Next returns the timestamp and events of the current frame and advances.
// ok is false once every frame has been returned.
func (r *Replayer) Next() (now time.Duration, events []system.Event, ok bool, err error) {
	if r.frame >= len(r.data.Frames) {
		return 0, nil, false, nil
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	events = make([]system.Event, 0, len(fi.E))
	for _, e := range fi.E {
		ev, err := e.Event()
		if err != nil {
			return 0, nil, false, fmt.Errorf("frame %d: %w", fi.F, err)
		}
		events = append(events, ev)
	}
	return time.Duration(fi.T), events, true, nil
}

// Play feeds every remaining frame to d and returns how many frames ran.
func (r *Replayer) Play(d Driver) (int, error) {
	played := 0
	for {
		now, events, ok, err := r.Next()
		if err != nil {
			return played, err
		}
		if !ok {
			return played, nil
		}
		d.Apply(events)
		if _, err := d.Frame(now); err != nil {
			return played, fmt.Errorf("frame %d: %w", r.frame-1, err)
		}
		played++
	}
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Config returns the configuration the replay was recorded with.
func (r *Replayer) Config() *config.GameConfig {
	return r.data.Config
}

// Start returns the scene the recorded session started in, empty for the menu.
func (r *Replayer) Start() string {
	return r.data.Start
}
