// Package mission decides, frame after frame, whether a built level has been
// won or lost.
package mission

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/engine"
)

// Result is the outcome of a mission check.
type Result = condition.Result

const (
	NotTerminated = condition.NotTerminated
	Won           = condition.Won
	Lost          = condition.Lost
	LostQuick     = condition.LostQuick
)

// quickLostDelay is how long a quick loss waits before ending the level.
const quickLostDelay float32 = 0.1

// Checker evaluates the end conditions of a World against its live objects.
type Checker struct {
	World   *engine.World
	Objects engine.ObjectManager
	Audio   engine.Audio
	Log     *logrus.Entry

	winDelay  float32
	lostDelay float32
}

// NewChecker returns a checker for a freshly built world.
func NewChecker(w *engine.World, objects engine.ObjectManager, audio engine.Audio, log *logrus.Entry) *Checker {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Checker{World: w, Objects: objects, Audio: audio, Log: log}
}

// WinDelay is the time left before a won level ends, 0 while undecided.
func (c *Checker) WinDelay() float32 { return c.winDelay }

// LostDelay is the time left before a lost level ends, 0 while undecided.
func (c *Checker) LostDelay() float32 { return c.lostDelay }

// SetResultFromScript lets the level controller program decide the outcome.
// End conditions are no longer evaluated afterwards.
func (c *Checker) SetResultFromScript(result Result, delay float32) {
	w := c.World
	w.EndTakeWinDelay = delay
	w.EndTakeLostDelay = delay
	w.MissionResult = result
	w.ResultFromScript = true
}

// Frame advances the clocks by dt and runs every per-frame poll: the
// population rules of the scoreboard, the music changes, then the end of
// mission check.
func (c *Checker) Frame(dt float32) Result {
	w := c.World
	w.GameTime += dt
	if w.MissionTimer.Started {
		w.MissionTimer.Time += dt
	}

	if w.Scoreboard != nil {
		w.Scoreboard.UpdateObjectCount(c.Objects)
	}
	c.UpdateAudio()
	return c.CheckEndMission(true)
}

// UpdateAudio plays the music of every audio change whose bounds now hold.
func (c *Checker) UpdateAudio() {
	for _, change := range c.World.AudioChange {
		if !change.Fire(c.Objects) {
			continue
		}
		c.Log.WithField("music", change.Music).Info("Changing music")
		c.Audio.PlayMusic(change.Music, change.Repeat)
	}
}

func isLost(r Result) bool { return r == Lost || r == LostQuick }

// ProcessEndMissionTake evaluates the EndMissionTake conditions and stores
// the outcome in World.MissionResult. In team mode, teams are retired as they
// finish and the result stays NotTerminated until the match is over.
func (c *Checker) ProcessEndMissionTake() Result {
	w := c.World

	// 1. Timeout
	timeout := false
	if !isLost(w.MissionResult) && w.EndTakeTimeout >= 0 {
		now := w.GameTime
		if w.MissionTimer.Enabled {
			now = w.MissionTimer.Time
		}
		if now > w.EndTakeTimeout {
			w.MissionResult = Lost
			timeout = true
		}
	}

	groups := condition.GroupByTeam(w.EndTake)
	_, hasNeutral := groups[0]
	teamMode := len(groups) > 0 && (len(groups) > 1 || !hasNeutral)

	// 2. Single outcome
	if !teamMode {
		if !timeout {
			w.MissionResult = condition.EvaluateGroup(groups[0], c.Objects)
		}
		if !isLost(w.MissionResult) && w.EndTakeResearch != 0 &&
			w.EndTakeResearch&w.ResearchDone[0] != w.EndTakeResearch {
			w.MissionResult = NotTerminated
		}
		return NotTerminated
	}

	// 3. Team mode
	if w.EndTakeResearch != 0 {
		c.Log.Warn("EndMissionResearch is ignored when end conditions name teams")
	}
	w.MissionResult = NotTerminated

	if w.Scoreboard != nil {
		for _, team := range lo.Union(condition.Teams(groups), c.Objects.ActiveTeams(), lo.Keys(w.TeamFinished)) {
			if team != 0 {
				w.Scoreboard.TrackTeam(team)
			}
		}
	}

	if len(c.Objects.ActiveTeams()) == 0 || timeout {
		c.Log.Info("All teams finished, mission ended")
		if w.Scoreboard != nil {
			w.EndTakeWinDelay = 0
			w.MissionResult = Won
		} else {
			w.MissionResult = Lost
		}
		return NotTerminated
	}

	for _, team := range condition.Teams(groups) {
		if team == 0 || w.TeamFinished[team] {
			continue
		}

		switch condition.EvaluateGroup(groups[team], c.Objects) {
		case Lost, LostQuick:
			c.Log.WithField("team", team).Info("Team lost")
			c.Objects.DestroyTeam(team, false)
			w.TeamFinished[team] = true
		case Won:
			c.Log.WithField("team", team).Info("Team finished")
			if w.Scoreboard != nil {
				w.Scoreboard.ProcessEndTake(team)
			}
			c.Objects.DestroyTeam(team, true)
			w.TeamFinished[team] = true

			if w.TeamsImmediateWin {
				for _, other := range c.Objects.ActiveTeams() {
					c.Objects.DestroyTeam(other, false)
					w.TeamFinished[other] = true
				}
			}
		}
	}
	return NotTerminated
}

// CheckEndMission reports whether the mission is over and how. frame is set
// when called from the frame loop, which lets a selectable base hold off a
// win until the player takes off.
func (c *Checker) CheckEndMission(frame bool) Result {
	w := c.World
	if !w.ResultFromScript {
		if r := c.ProcessEndMissionTake(); r != NotTerminated {
			return r
		}
	}

	switch w.MissionResult {
	case LostQuick:
		if c.lostDelay == 0 {
			c.lostDelay = quickLostDelay
			c.winDelay = 0
		}
		c.stopTimer()
		return LostQuick

	case Lost:
		if c.lostDelay == 0 {
			c.Log.Info("Mission lost")
			c.lostDelay = w.EndTakeLostDelay
			c.winDelay = 0
		}
		c.stopTimer()
		return Lost

	case Won:
		if w.EndTakeWinDelay == -1 && c.winDelay == 0 {
			c.winDelay = 1
			c.lostDelay = 0
			c.stopTimer()
			return Won
		}

		if frame && w.Base != nil && !w.EndTakeImmediate && w.Base.Selectable() {
			return NotTerminated
		}

		if c.winDelay == 0 {
			entry := c.Log
			if w.MissionTimer.Enabled && w.MissionTimer.Started {
				entry = entry.WithField("time", w.MissionTimer.Time)
			}
			entry.Info("Mission won")
			c.stopTimer()
			c.winDelay = w.EndTakeWinDelay
			c.lostDelay = 0
		}
		return Won
	}
	return NotTerminated
}

func (c *Checker) stopTimer() {
	c.World.MissionTimer.Enabled = false
	c.World.MissionTimer.Started = false
}
