package scoreboard

import (
	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// KillRule awards points to the killer's team for destroying a matching
// object.
type KillRule struct {
	condition.ObjectCondition
	Score        int
	FriendlyFire bool
}

// Read fills the rule from a ScoreboardKillRule line. The team parameter
// filters the killer, not the target.
func (r *KillRule) Read(line *parser.Line, unit float32) error {
	if err := r.ObjectCondition.Read(line, unit); err != nil {
		return err
	}

	var err error
	if r.Score, err = line.Param("score").AsInt(); err != nil {
		return err
	}
	if r.FriendlyFire, err = line.Param("friendlyFire").AsBoolOr(false); err != nil {
		return err
	}
	return nil
}

// ObjectRule awards points proportional to the change of a population.
type ObjectRule struct {
	condition.ObjectCondition
	Score   int
	WinTeam int

	lastCount int
	counted   bool
}

// Read fills the rule from a ScoreboardObjectRule line.
func (r *ObjectRule) Read(line *parser.Line, unit float32) error {
	if err := r.ObjectCondition.Read(line, unit); err != nil {
		return err
	}

	var err error
	if r.Score, err = line.Param("score").AsInt(); err != nil {
		return err
	}
	if r.WinTeam, err = line.Param("winTeam").AsInt(); err != nil {
		return err
	}
	return nil
}

// EndTakeRule awards points to a team reaching its end condition, optionally
// only for a given finishing position.
type EndTakeRule struct {
	Score int
	Team  int
	Order int
}

// Read fills the rule from a ScoreboardEndTakeRule line.
func (r *EndTakeRule) Read(line *parser.Line) error {
	var err error
	if r.Score, err = line.Param("score").AsInt(); err != nil {
		return err
	}
	if r.Team, err = line.Param("team").AsIntOr(0); err != nil {
		return err
	}
	if r.Order, err = line.Param("order").AsIntOr(0); err != nil {
		return err
	}
	return nil
}
