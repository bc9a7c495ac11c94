// Package replay records the input events fed to the loop, frame by frame,
// and plays them back deterministically.
package replay

import (
	"fmt"

	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
)

// Version is the replay file format version.
const Version = "2.1"

// EventInput is one recorded input event.
type EventInput struct {
	K   string  `json:"k"`             // Event kind, see system.EventKind
	Key string  `json:"key,omitempty"` // Key name for key events
	X   float64 `json:"x,omitempty"`   // World X for mouse events
	Y   float64 `json:"y,omitempty"`   // World Y for mouse events
}

// FrameInput records everything the loop saw on a single frame
type FrameInput struct {
	F int          `json:"f"`           // Frame number
	T int64        `json:"t"`           // Frame timestamp, nanoseconds since the first frame
	E []EventInput `json:"e,omitempty"` // Events applied before the frame
}

// ReplayData contains all data needed to replay a game session.
// Config is the effective configuration the session ran with, so playback
// does not depend on whichever game.yaml the replaying machine finds.
type ReplayData struct {
	Version   string             `json:"version"`
	Seed      int64              `json:"seed"`
	Config    *config.GameConfig `json:"config"`
	Start     string             `json:"start,omitempty"` // Scene the session started in, empty = menu
	StartTime string             `json:"startTime"`
	Frames    []FrameInput       `json:"frames"`
}

// FromEvent converts a loop event into its recorded form.
func FromEvent(ev system.Event) EventInput {
	in := EventInput{K: ev.Kind.String()}
	switch ev.Kind {
	case system.EventKeyDown, system.EventKeyUp:
		in.Key = string(ev.Key)
	default:
		in.X, in.Y = ev.X, ev.Y
	}
	return in
}

// Event converts the recorded form back into a loop event.
func (e EventInput) Event() (system.Event, error) {
	kind, ok := system.ParseEventKind(e.K)
	if !ok {
		return system.Event{}, fmt.Errorf("unknown event kind %q", e.K)
	}
	return system.Event{Kind: kind, Key: system.Key(e.Key), X: e.X, Y: e.Y}, nil
}
