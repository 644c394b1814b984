package command

import (
	"fmt"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// addToken registers a bound on how often a token may appear in the player's
// programs. A token may be bounded only once per level.
func addToken(ctx *engine.SceneBuildContext, line *parser.Line, bounds engine.TokenBounds) error {
	r := newReader(line)
	token := r.string("text")
	if r.Err() != nil {
		return r.Err()
	}
	if _, ok := ctx.World.Tokens[token]; ok {
		return &engine.DuplicateDefinitionError{What: fmt.Sprintf("token %q", token)}
	}
	ctx.World.Tokens[token] = bounds
	return nil
}

func obligatoryToken(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	bounds := engine.TokenBounds{Min: r.intOr("min", 1), Max: r.intOr("max", -1)}
	if r.Err() != nil {
		return r.Err()
	}
	return addToken(ctx, line, bounds)
}

func prohibitedToken(ctx *engine.SceneBuildContext, line *parser.Line) error {
	return addToken(ctx, line, engine.TokenBounds{Min: 0, Max: 0})
}

func enableBuild(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	flag := r.buildFlag("type")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.Build |= flag
	return nil
}

func enableResearch(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	flag := r.researchFlag("type")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.ResearchEnable |= flag
	return nil
}

func doneResearch(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	flag := r.researchFlag("type")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.MarkResearchDone(flag, 0)
	return nil
}

func newScript(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	s := engine.NewScript{
		Type: r.objectTypeOr("type", data.ObjectNull),
		Name: r.pathOr("name", scriptDir, ""),
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.NewScripts = append(ctx.World.NewScripts, s)
	return nil
}
