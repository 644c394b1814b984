package command

import (
	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
	"github.com/colobot/colobot-sub009/internal/scoreboard"
)

func endMissionTake(ctx *engine.SceneBuildContext, line *parser.Line) error {
	c := &condition.SceneEndCondition{}
	if err := c.Read(line, ctx.Unit); err != nil {
		return err
	}
	warnLegacyArea(ctx, line)
	if c.Immediat {
		ctx.World.EndTakeImmediate = true
	}
	ctx.World.EndTake = append(ctx.World.EndTake, c)
	return nil
}

func endMissionTeams(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	immediate := r.boolOr("immediateWin", false)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.TeamsImmediateWin = immediate
	return nil
}

func endMissionDelay(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	win := r.floatOr("win", 2)
	lost := r.floatOr("lost", 2)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.EndTakeWinDelay = win
	ctx.World.EndTakeLostDelay = lost
	return nil
}

func endMissionResearch(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	flag := r.researchFlag("type")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.EndTakeResearch |= flag
	return nil
}

func endMissionTimeout(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	timeout := r.float("time")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.EndTakeTimeout = timeout
	return nil
}

func enableScoreboard(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	enabled := r.boolOr("enable", false)
	sortType := r.sortTypeOr("sort", data.SortID)
	if r.Err() != nil {
		return r.Err()
	}
	if !enabled {
		return nil
	}

	w := ctx.World
	if w.Scoreboard == nil {
		w.Scoreboard = scoreboard.New(sortType, func() float32 { return w.GameTime })
		w.Scoreboard.Log = ctx.Log
	} else {
		w.Scoreboard.Sort = sortType
	}
	return nil
}

// scoreboardFor returns the scoreboard the rule line adds to, which an
// earlier Scoreboard line must have enabled.
func scoreboardFor(ctx *engine.SceneBuildContext, line *parser.Line) (*scoreboard.Scoreboard, error) {
	if ctx.World.Scoreboard == nil {
		return nil, &engine.OrderingViolationError{Command: line.Command(), Requires: "scoreboard"}
	}
	return ctx.World.Scoreboard, nil
}

func scoreboardKillRule(ctx *engine.SceneBuildContext, line *parser.Line) error {
	sb, err := scoreboardFor(ctx, line)
	if err != nil {
		return err
	}
	rule := &scoreboard.KillRule{}
	if err := rule.Read(line, ctx.Unit); err != nil {
		return err
	}
	sb.AddKillRule(rule)
	return nil
}

func scoreboardObjectRule(ctx *engine.SceneBuildContext, line *parser.Line) error {
	sb, err := scoreboardFor(ctx, line)
	if err != nil {
		return err
	}
	rule := &scoreboard.ObjectRule{}
	if err := rule.Read(line, ctx.Unit); err != nil {
		return err
	}
	sb.AddObjectRule(rule)
	return nil
}

func scoreboardEndTakeRule(ctx *engine.SceneBuildContext, line *parser.Line) error {
	sb, err := scoreboardFor(ctx, line)
	if err != nil {
		return err
	}
	rule := &scoreboard.EndTakeRule{}
	if err := rule.Read(line); err != nil {
		return err
	}
	sb.AddEndTakeRule(rule)
	return nil
}
