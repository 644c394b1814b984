package command

import (
	"fmt"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

const helpDir = "help/%lng%"

func title(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	text := r.stringOr("text", "")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.Title = text
	return nil
}

func resume(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	text := r.stringOr("text", "")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.Resume = text
	return nil
}

func scriptName(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	text := r.string("text")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.ScriptName = text
	return nil
}

func scriptFile(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	name := r.string("name")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.ScriptFile = name
	return nil
}

func instructions(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	name := r.path("name", helpDir)
	immediate := r.boolOr("immediat", false)
	locked := r.boolOr("lock", false)
	if r.Err() != nil {
		return r.Err()
	}

	s := &ctx.World.Satcom
	s.Instructions = name
	s.Immediate = immediate
	s.Locked = locked
	return nil
}

// helpDocument returns a handler storing the name param into one Satcom slot.
func helpDocument(slot func(*engine.Satcom) *string) engine.Handler {
	return func(ctx *engine.SceneBuildContext, line *parser.Line) error {
		r := newReader(line)
		name := r.path("name", helpDir)
		if r.Err() != nil {
			return r.Err()
		}
		*slot(&ctx.World.Satcom) = name
		return nil
	}
}

var (
	satellite  = helpDocument(func(s *engine.Satcom) *string { return &s.Satellite })
	loading    = helpDocument(func(s *engine.Satcom) *string { return &s.Loading })
	helpFile   = helpDocument(func(s *engine.Satcom) *string { return &s.Help })
	soluceFile = helpDocument(func(s *engine.Satcom) *string { return &s.Solution })
)

func endingFile(ctx *engine.SceneBuildContext, line *parser.Line) error {
	win, err := endingPath(ctx, line, "win")
	if err != nil {
		return err
	}
	lost, err := endingPath(ctx, line, "lost")
	if err != nil {
		return err
	}
	ctx.World.EndingWin = win
	ctx.World.EndingLost = lost
	return nil
}

// endingPath accepts a path, or the rank of a stock ending scene as older
// levels did.
func endingPath(ctx *engine.SceneBuildContext, line *parser.Line, name string) (string, error) {
	p := line.Param(name)
	if !p.IsDefined() {
		return "", nil
	}

	if rank, err := p.AsInt(); err == nil {
		log := ctx.LineLog(line)
		if rank < 0 {
			log.Warnf("%s=%d: negative ending rank, no ending scene", name, rank)
			return "", nil
		}
		log.Warnf("%s=%d: numeric ending ranks are deprecated, use a path", name, rank)
		return fmt.Sprintf("levels/other/%s%03d.txt", name, rank), nil
	}

	return p.AsPath("levels")
}

func messageDelay(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	factor := r.float("factor")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.MessageDelay = factor
	return nil
}

func missionTimer(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	enabled := r.bool("enabled")
	byProgram := r.boolOr("program", false)
	if r.Err() != nil {
		return r.Err()
	}

	t := &ctx.World.MissionTimer
	t.Enabled = enabled
	t.Started = enabled && !byProgram
	return nil
}

func teamName(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	team := r.int("team")
	name := r.string("name")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.TeamNames[team] = name
	return nil
}

// level sets the unit scale every later distance is read with.
func level(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	unit := r.floatOr("unitScale", engine.DefaultUnit)
	trace := r.floatOr("traceQuality", 1)
	shortcuts := r.boolOr("shortcut", true)
	mission := r.missionTypeOr("type", data.MissionNormal)
	magnify := r.floatOr("magnifyDamage", 1)
	nuclear := r.floatOr("nuclearCapacity", 10)
	cell := r.floatOr("cellCapacity", 1)
	if r.Err() != nil {
		return r.Err()
	}
	if unit <= 0 {
		return &parser.ParamError{Kind: parser.BadType, Param: "unitScale", Value: line.Param("unitScale").Value(), Expected: "positive float", File: line.File(), Line: line.Number()}
	}

	w := ctx.World
	w.Unit = unit
	ctx.Unit = unit
	w.TracePrecision = trace
	w.Shortcuts = shortcuts
	w.MissionType = mission
	w.MagnifyDamage = magnify
	w.NuclearCapacity = nuclear
	w.CellCapacity = cell

	ctx.Collab.Renderer.SetTracePrecision(trace)
	return nil
}
