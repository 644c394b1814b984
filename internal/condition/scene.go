package condition

import (
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Result is the outcome of evaluating end-mission conditions.
type Result int

const (
	NotTerminated Result = iota
	Won
	Lost
	// LostQuick ends the mission with a short delay, used by scripts.
	LostQuick
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case LostQuick:
		return "lost (quick)"
	}
	return "not terminated"
}

// SceneCondition holds while the number of matching objects is strictly
// between Min and Max.
type SceneCondition struct {
	ObjectCondition
	Min int
	Max int
}

// Read fills the condition from a level line.
func (c *SceneCondition) Read(line *parser.Line, unit float32) error {
	if err := c.ObjectCondition.Read(line, unit); err != nil {
		return err
	}

	var err error
	if c.Min, err = line.Param("min").AsIntOr(1); err != nil {
		return err
	}
	if c.Max, err = line.Param("max").AsIntOr(9999); err != nil {
		return err
	}
	return nil
}

// Holds reports whether a population of n satisfies the bounds.
func (c *SceneCondition) Holds(n int) bool {
	return c.Min < n && n < c.Max
}

// Check counts the matching objects and tests the bounds.
func (c *SceneCondition) Check(src ObjectSource) bool {
	return c.Holds(c.CountObjects(src))
}

// SceneEndCondition is one EndMissionTake rule.
type SceneEndCondition struct {
	SceneCondition
	WinTeam int
	// Lost makes the mission fail once the population drops to it or
	// below. -1 disables the check.
	Lost     int
	Immediat bool
}

// Read fills the condition from a level line.
func (c *SceneEndCondition) Read(line *parser.Line, unit float32) error {
	if err := c.SceneCondition.Read(line, unit); err != nil {
		return err
	}

	var err error
	if c.WinTeam, err = line.Param("winTeam").AsIntOr(0); err != nil {
		return err
	}
	if c.Lost, err = line.Param("lost").AsIntOr(-1); err != nil {
		return err
	}
	if c.Immediat, err = line.Param("immediat").AsBoolOr(false); err != nil {
		return err
	}
	return nil
}

// CanLose reports whether the condition has a lose threshold.
func (c *SceneEndCondition) CanLose() bool {
	return c.Lost >= 0
}

// MissionResult evaluates the condition against the world.
func (c *SceneEndCondition) MissionResult(src ObjectSource) Result {
	n := c.CountObjects(src)
	if c.CanLose() && n <= c.Lost {
		return Lost
	}
	if !c.Holds(n) {
		return NotTerminated
	}
	return Won
}

// AudioChangeCondition switches the music once its population bounds hold.
type AudioChangeCondition struct {
	SceneCondition
	Music   string
	Repeat  bool
	Changed bool
}

// Read fills the condition from a level line.
func (c *AudioChangeCondition) Read(line *parser.Line, unit float32) error {
	if err := c.SceneCondition.Read(line, unit); err != nil {
		return err
	}

	var err error
	if c.Music, err = line.Param("filename").AsPath("music"); err != nil {
		return err
	}
	if c.Repeat, err = line.Param("repeat").AsBoolOr(true); err != nil {
		return err
	}
	c.Changed = false
	return nil
}

// Fire reports whether the music should change now. It fires at most once.
func (c *AudioChangeCondition) Fire(src ObjectSource) bool {
	if c.Changed || !c.Check(src) {
		return false
	}
	c.Changed = true
	return true
}
