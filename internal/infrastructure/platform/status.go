package platform

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleStatus shows the scene and frame rate in the window title.
type TitleStatus struct {
	base  string
	scene string
	fps   int
	set   func(string)
}

// NewTitleStatus creates a status observer that writes the window title.
func NewTitleStatus(base string) *TitleStatus {
	return &TitleStatus{base: base, set: ebiten.SetWindowTitle}
}

func (t *TitleStatus) SetFPS(fps int) {
	t.fps = fps
	t.set(t.Title())
}

func (t *TitleStatus) SetScene(name string) {
	t.scene = name
	t.set(t.Title())
}

// Title returns the window title for the current status.
func (t *TitleStatus) Title() string {
	if t.scene == "" {
		return t.base
	}
	return fmt.Sprintf("%s - %s - %d FPS", t.base, t.scene, t.fps)
}

// LogStatus reports status through a logger. Headless runs use it.
type LogStatus struct {
	logger *log.Logger
}

// NewLogStatus creates a logging status observer.
func NewLogStatus(logger *log.Logger) *LogStatus {
	return &LogStatus{logger: logger}
}

func (l *LogStatus) SetFPS(fps int) {
	l.logger.Debug("fps", "value", fps)
}

func (l *LogStatus) SetScene(name string) {
	l.logger.Debug("scene", "name", name)
}
