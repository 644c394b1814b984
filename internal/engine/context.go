package engine

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// LoadMode says why a scene is being built. Commands are tagged with the
// modes they run in.
type LoadMode uint8

const (
	// ModeNormal is a fresh start of the level.
	ModeNormal LoadMode = 1 << iota
	// ModeReset lays the objects out again without touching level settings.
	ModeReset
	// ModeLoadSaved restores a saved game.
	ModeLoadSaved

	ModeDefault = ModeNormal | ModeLoadSaved
	ModeAll     = ModeNormal | ModeReset | ModeLoadSaved
)

// Has reports whether mode is one of the modes in m.
func (m LoadMode) Has(mode LoadMode) bool {
	return m&mode != 0
}

func (m LoadMode) String() string {
	var parts []string
	if m.Has(ModeNormal) {
		parts = append(parts, "normal")
	}
	if m.Has(ModeReset) {
		parts = append(parts, "reset")
	}
	if m.Has(ModeLoadSaved) {
		parts = append(parts, "load-saved")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseLoadMode accepts the names printed by String.
func ParseLoadMode(s string) (LoadMode, error) {
	switch strings.ToLower(s) {
	case "normal", "":
		return ModeNormal, nil
	case "reset":
		return ModeReset, nil
	case "load-saved", "loadsaved", "saved":
		return ModeLoadSaved, nil
	}
	return 0, fmt.Errorf("unknown load mode %q", s)
}

// LevelRef identifies the level being built.
type LevelRef struct {
	Category data.LevelCategory `json:"category" yaml:"category"`
	Chapter  int                `json:"chapter" yaml:"chapter"`
	Rank     int                `json:"rank" yaml:"rank"`
	// Path overrides the scene file derived from the other fields.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ScenePath is the level file to parse, relative to the data directory.
func (r LevelRef) ScenePath() string {
	if r.Path != "" {
		return r.Path
	}
	return parser.BuildScenePath(r.Category, r.Chapter, r.Rank)
}

// Key names the level in the player's program storage, e.g. "m003001".
func (r LevelRef) Key() string {
	letter := byte('x')
	if dir := r.Category.Dir(); dir != "" {
		letter = dir[0]
	}
	return fmt.Sprintf("%c%03d%03d", letter, r.Chapter, r.Rank)
}

// Handler applies one level line to the scene under construction.
type Handler func(ctx *SceneBuildContext, line *parser.Line) error

// CommandSpec is one entry of the command table.
type CommandSpec struct {
	Handler Handler
	Modes   LoadMode
}

// SceneBuildContext is what a handler gets to work with for one build.
type SceneBuildContext struct {
	Mode     LoadMode
	Level    LevelRef
	World    *World
	Collab   Collaborators
	Log      *logrus.Entry
	Progress ProgressReporter

	// Unit converts level distances into world space. Level changes it.
	Unit float32
	// SavePath is the saved scene being restored, empty otherwise.
	SavePath string
	// PlusResearchOptOut keeps GamePlus levels from pulling the unlock pool.
	PlusResearchOptOut bool
	// ObjectTotal is the number of CreateObject lines, for progress only.
	ObjectTotal int
	// ObjectsPlaced is set once the object section has begun.
	ObjectsPlaced bool
}

// LineLog returns a logger tagged with the location of line.
func (c *SceneBuildContext) LineLog(line *parser.Line) *logrus.Entry {
	return c.Log.WithFields(logrus.Fields{
		"file":    line.File(),
		"line":    line.Number(),
		"command": line.Command(),
	})
}

// SetProgress forwards to the progress reporter, if any.
func (c *SceneBuildContext) SetProgress(fraction float32, text string) {
	if c.Progress != nil {
		c.Progress.SetProgress(fraction, text)
	}
}
