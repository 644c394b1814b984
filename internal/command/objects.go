package command

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

const (
	scriptDir = "ai"
	// maxScripts is how many script<N> params a CreateObject line may carry.
	maxScripts = 10
)

func beginObject(ctx *engine.SceneBuildContext, line *parser.Line) error {
	ctx.ObjectsPlaced = true
	w := ctx.World
	if ctx.Mode != engine.ModeReset {
		ctx.Collab.Renderer.ChangeColors(w)
		w.ColorsDirty = false
	}

	if ctx.SavePath != "" && ctx.Collab.Scenes != nil {
		selected, err := ctx.Collab.Scenes.ReadScene(ctx, ctx.SavePath)
		if err != nil {
			return fmt.Errorf("failed to restore saved scene %s: %w", ctx.SavePath, err)
		}
		if selected != nil {
			w.Selected = selected
		}
	}

	ctx.SetProgress(engine.ProgressObjects, "")
	return nil
}

func levelController(ctx *engine.SceneBuildContext, line *parser.Line) error {
	ctx.ObjectsPlaced = true
	if ctx.World.Controller != nil {
		return &engine.DuplicateDefinitionError{What: "LevelController"}
	}

	r := newReader(line)
	script := r.pathOr("script", scriptDir, "")
	if r.Err() != nil {
		return r.Err()
	}

	params := engine.CreateParams{
		Type:  data.ObjectController,
		Power: 100,
		ID:    -1,
		Run:   -1,
	}
	if script != "" {
		params.Programs = []engine.Program{{Path: script, ReadOnly: true, Runnable: true}}
		params.Run = 0
	}

	obj, err := ctx.Collab.Objects.CreateObject(params)
	if err != nil {
		return &engine.ObjectCreationError{Type: params.Type, Err: err}
	}
	ctx.World.Controller = obj
	return nil
}

// readCreateParams reads the construction bundle of a CreateObject line.
func readCreateParams(ctx *engine.SceneBuildContext, line *parser.Line) (engine.CreateParams, error) {
	r := newReader(line)
	params := engine.CreateParams{
		Pos:     r.point("pos").Mul(ctx.Unit),
		Angle:   r.floatOr("dir", 0) * math32.Pi,
		Type:    r.objectType("type"),
		Power:   r.floatOr("power", 1),
		Trainer: r.boolOr("trainer", false),
		Toy:     r.boolOr("toy", false),
		Option:  r.intOr("option", 0),
		Team:    r.intOr("team", 0),
		ID:      r.intOr("id", -1),
	}

	for i := 1; i <= maxScripts; i++ {
		name := fmt.Sprintf("script%d", i)
		if !r.has(name) {
			continue
		}
		params.Programs = append(params.Programs, engine.Program{
			Path:     r.path(name, scriptDir),
			ReadOnly: r.boolOr(fmt.Sprintf("scriptReadOnly%d", i), true),
			Runnable: r.boolOr(fmt.Sprintf("scriptRunnable%d", i), true),
		})
	}

	// run counts from 1
	params.Run = -1
	if run := r.intOr("run", -1); run > 0 {
		params.Run = run - 1
	}
	return params, r.Err()
}

func createObject(ctx *engine.SceneBuildContext, line *parser.Line) error {
	ctx.ObjectsPlaced = true
	params, err := readCreateParams(ctx, line)
	if err != nil {
		return err
	}

	obj, err := ctx.Collab.Objects.CreateObject(params)
	if err != nil {
		return &engine.ObjectCreationError{Type: params.Type, Err: err}
	}
	if err := obj.Read(line, ctx.Unit); err != nil {
		return err
	}

	w := ctx.World
	selected, err := line.Param("select").AsBoolOr(false)
	if err != nil {
		return err
	}
	if selected {
		w.Selected = obj
	}
	if obj.Type() == data.ObjectBase {
		w.Base = obj
	}

	rank := w.NextRank
	if obj.Selectable() && obj.Type() != data.ObjectHuman {
		obj.SetProgramStorageIndex(rank)
		if ctx.Collab.Programs != nil {
			if err := ctx.Collab.Programs.LoadPrograms(obj, ctx.Level.Key(), rank); err != nil {
				return fmt.Errorf("failed to load programs of %s: %w", params.Type, err)
			}
		}
	}

	w.NextRank++
	w.ObjectCount++
	ctx.SetProgress(engine.ObjectProgress(w.ObjectCount, ctx.ObjectTotal), "")
	return nil
}
