package engine

import (
	"errors"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
)

// DefaultUnit is the world unit scale used when a level has no Level line.
const DefaultUnit float32 = 4

// Reference colors of the stock textures. Recoloring maps them onto the
// level's VehicleColor, InsectColor and GreeneryColor.
var (
	RefBotColor   = data.Color{R: 10.0 / 256, G: 20.0 / 256, B: 30.0 / 256, A: 1}
	RefAlienColor = data.Color{R: 135.0 / 256, G: 170.0 / 256, B: 13.0 / 256, A: 1}
	RefGreenColor = data.Color{R: 135.0 / 256, G: 170.0 / 256, B: 13.0 / 256, A: 1}
)

var (
	ErrBuildDisabled = errors.New("building is disabled in this level")
	ErrBuildResearch = errors.New("research is required first")
)

// resetTransient clears what every build recreates, including a reset.
func (w *World) resetTransient() {
	w.Controller = nil
	w.Base = nil
	w.Selected = nil
	w.ObjectCount = 0
	w.NextRank = 0
	w.GameTime = 0
	w.MissionTimer = MissionTimer{}
	w.TeamFinished = make(map[int]bool)
	w.EndTakeImmediate = false
}

// resetLevel clears everything the level file decides. A reset keeps it.
func (w *World) resetLevel() {
	w.Unit = DefaultUnit

	w.Title = ""
	w.Resume = ""
	w.ScriptName = ""
	w.ScriptFile = ""
	w.Satcom = Satcom{}
	w.EndingWin = ""
	w.EndingLost = ""
	w.MissionType = data.MissionNormal

	w.TracePrecision = 1
	w.Shortcuts = true
	w.MagnifyDamage = 1
	w.NuclearCapacity = 10
	w.CellCapacity = 1
	w.MessageDelay = 1

	w.Background = Background{}
	w.VehicleColor = map[int]data.Color{0: RefBotColor}
	w.AlienColor = RefAlienColor
	w.GreenColor = RefGreenColor
	w.ColorsDirty = false

	w.MainTrack = AudioTrack{Repeat: true}
	w.SatcomTrack = AudioTrack{Repeat: true}
	w.EditorTrack = AudioTrack{Repeat: true}
	w.AudioChange = nil

	w.Build = 0
	w.ResearchEnable = 0
	w.ResearchDone = make(map[int]data.ResearchFlag)
	w.NewScripts = nil
	w.Tokens = make(map[string]TokenBounds)
	w.TeamNames = make(map[int]string)
	w.Viewpoints = nil

	w.EndTake = nil
	w.EndTakeWinDelay = 2
	w.EndTakeLostDelay = 2
	w.EndTakeTimeout = -1
	w.EndTakeResearch = 0
	w.TeamsImmediateWin = false
	w.MissionResult = condition.NotTerminated
	w.ResultFromScript = false
	w.Scoreboard = nil
}

// IsResearchDone reports whether team has completed the research.
func (w *World) IsResearchDone(flag data.ResearchFlag, team int) bool {
	return w.ResearchDone[team]&flag != 0
}

// MarkResearchDone records a completed research for team.
func (w *World) MarkResearchDone(flag data.ResearchFlag, team int) {
	w.ResearchDone[team] |= flag
}

// IsResearchEnabled reports whether the research can be started at all.
func (w *World) IsResearchEnabled(flag data.ResearchFlag) bool {
	return w.ResearchEnable&flag != 0
}

// IsBuildingEnabled reports whether the level allows the building flag.
func (w *World) IsBuildingEnabled(flag data.BuildFlag) bool {
	return w.Build&flag != 0
}

// BuildError explains why team cannot build t, or returns nil.
func (w *World) BuildError(t data.ObjectType, team int) error {
	flag, ok := data.BuildFlagFor(t)
	if !ok || !w.IsBuildingEnabled(flag) {
		return ErrBuildDisabled
	}

	switch t {
	case data.ObjectTower:
		if !w.IsResearchDone(data.ResearchTower, team) {
			return ErrBuildResearch
		}
	case data.ObjectNuclear:
		if !w.IsResearchDone(data.ResearchAtomic, team) {
			return ErrBuildResearch
		}
	}
	return nil
}

// CanBuild reports whether team may build a building of type t.
func (w *World) CanBuild(t data.ObjectType, team int) bool {
	return w.BuildError(t, team) == nil
}

// FactoryError explains why a factory of team cannot produce t, or returns
// nil.
func (w *World) FactoryError(t data.ObjectType, team int) error {
	for _, flag := range []data.ResearchFlag{data.ResearchFor(t), data.ResearchForTool(t)} {
		if flag != 0 && !w.IsResearchDone(flag, team) {
			return ErrBuildResearch
		}
	}
	return nil
}

// CanFactory reports whether a factory of team may produce t.
func (w *World) CanFactory(t data.ObjectType, team int) bool {
	return w.FactoryError(t, team) == nil
}

// TeamName returns the display name of a team, empty when the level did not
// name it.
func (w *World) TeamName(team int) string {
	return w.TeamNames[team]
}
