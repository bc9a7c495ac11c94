package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
)

// Recorder handles input recording for replay
type Recorder struct {
	data   ReplayData
	frame  int
	origin time.Duration
}

// NewRecorder creates a new recorder for a session built from seed and cfg.
// cfg is copied; later changes to it are not recorded.
func NewRecorder(seed int64, cfg *config.GameConfig) *Recorder {
	snapshot := *cfg
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Config:    &snapshot,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
	}
}

// SetStart records the scene the session starts in.
func (r *Recorder) SetStart(scene string) {
	r.data.Start = scene
}

// RecordFrame records a single frame's timestamp and the events applied
// before it. Timestamps are stored relative to the first recorded frame.
func (r *Recorder) RecordFrame(now time.Duration, events []system.Event) {
	if r.frame == 0 {
		r.origin = now
	}

	fi := FrameInput{F: r.frame, T: int64(now - r.origin)}
	if len(events) > 0 {
		fi.E = make([]EventInput, 0, len(events))
		for _, ev := range events {
			fi.E = append(fi.E, FromEvent(ev))
		}
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) (err error) {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return encode(file, r.data)
}

func encode(w io.Writer, data ReplayData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
