package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Builder turns a level file into a World by running each line through the
// command table.
type Builder struct {
	// DataDir is the root all level and resource paths are relative to.
	DataDir string
	// Language selects the ".X" variant of translated lines.
	Language string

	Commands map[string]CommandSpec
	Collab   Collaborators
	Log      *logrus.Logger
	Progress ProgressReporter

	// SavePath is the saved scene restored by the next LoadSaved build.
	// Every build consumes it.
	SavePath string
	// PlusResearchOptOut keeps GamePlus levels from pulling the unlock pool.
	PlusResearchOptOut bool
}

// NewBuilder creates a builder over a command table. A nil logger logs to
// the standard logrus logger.
func NewBuilder(commands map[string]CommandSpec, collab Collaborators, log *logrus.Logger) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{
		Commands: commands,
		Collab:   collab,
		Log:      log,
		Progress: NopProgress{},
		Language: parser.DefaultLanguage,
	}
}

// BuildScene builds level into world. Lines run in file order; the first
// failing line aborts the build and leaves world partially built.
//
// The pipeline is: reset → parse → run lines → commit level settings.
func (b *Builder) BuildScene(ctx context.Context, world *World, level LevelRef, mode LoadMode) (err error) {
	if err := b.Collab.Validate(); err != nil {
		return err
	}

	sc := b.newContext(world, level, mode)
	defer func() {
		// The save marker is single use, whatever the outcome.
		b.SavePath = ""
		if err != nil {
			sc.Log.WithError(err).Error("scene build failed")
		}
	}()

	sc.Log.Info("building scene")

	// 1. Reset the world
	world.resetTransient()
	if mode != ModeReset {
		world.resetLevel()
	}

	// 2. The mission timer restarts even on a reset
	world.MissionTimer.Time = 0
	sc.Unit = world.Unit
	sc.SetProgress(ProgressStart, "")

	// 3. Parse the level file
	p := parser.New(b.DataDir)
	p.SetLanguage(b.Language)
	p.SetLevelPaths(parser.NewLevelPaths(level.Category, level.Chapter, level.Rank))
	if err := p.Load(level.ScenePath()); err != nil {
		return err
	}
	sc.SetProgress(ProgressParsed, "")

	// 4. Count objects for progress
	sc.ObjectTotal = p.CountLines("CreateObject")

	// 5. Run every line
	for _, line := range p.Lines() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scene build interrupted at %s:%d: %w", line.File(), line.Number(), err)
		}

		spec, ok := b.Commands[line.Command()]
		if !ok {
			return &UnknownCommandError{Command: line.Command(), File: line.File(), Line: line.Number()}
		}
		if !spec.Modes.Has(mode) {
			continue
		}

		sc.LineLog(line).Debug("run")
		if err := spec.Handler(sc, line); err != nil {
			return &LineError{Command: line.Command(), File: line.File(), Line: line.Number(), Err: err}
		}
	}

	// 6. Commit level settings
	if mode != ModeReset {
		b.commit(sc)
	}

	sc.SetProgress(ProgressDone, "")
	sc.Log.WithField("objects", world.ObjectCount).Info("scene built")
	return nil
}

func (b *Builder) newContext(world *World, level LevelRef, mode LoadMode) *SceneBuildContext {
	progress := b.Progress
	if progress == nil {
		progress = NopProgress{}
	}
	return &SceneBuildContext{
		Mode:               mode,
		Level:              level,
		World:              world,
		Collab:             b.Collab,
		Log:                b.Log.WithFields(logrus.Fields{"level": level.ScenePath(), "mode": mode.String()}),
		Progress:           progress,
		Unit:               world.Unit,
		SavePath:           b.SavePath,
		PlusResearchOptOut: b.PlusResearchOptOut,
	}
}

// commit applies what the lines only recorded, then merges the level's
// unlocks with the player's free game pool.
func (b *Builder) commit(sc *SceneBuildContext) {
	w := sc.World
	c := sc.Collab

	c.Renderer.SetBackground(w.Background)

	// 7. Category unlock merge
	if c.Profile != nil {
		switch sc.Level.Category {
		case data.CategoryMissions:
			c.Profile.SetFreeGameResearchUnlock(c.Profile.FreeGameResearchUnlock() | w.ResearchDone[0])
			c.Profile.SetFreeGameBuildUnlock(c.Profile.FreeGameBuildUnlock() | w.Build)
		case data.CategoryFreeGame:
			w.ResearchDone[0] = c.Profile.FreeGameResearchUnlock()
			w.Build = c.Profile.FreeGameBuildUnlock()
			w.Build &^= BuildResearchBuildings
			w.Build |= BuildFreeGameForced
		case data.CategoryGamePlus:
			if !sc.PlusResearchOptOut {
				w.ResearchDone[0] |= c.Profile.FreeGameResearchUnlock()
				w.Build |= c.Profile.FreeGameBuildUnlock()
			}
		}

		// 8. The Phazer is granted once the last mission chapter is passed
		if !w.IsResearchDone(data.ResearchPhazer, 0) &&
			(sc.Level.Category == data.CategoryFreeGame || sc.Level.Category == data.CategoryGamePlus) &&
			c.Profile.LevelPassed(data.CategoryMissions, 9, 0) {
			w.Build |= data.BuildResearch
			w.ResearchEnable |= data.ResearchPhazer
		}
	}

	w.ResearchEnable |= w.ResearchDone[0]

	if w.Selected == nil {
		for _, obj := range c.Objects.AllObjects() {
			if obj.Type() == data.ObjectHuman {
				w.Selected = obj
				break
			}
		}
	}

	c.Renderer.ShowShortcuts(w.Shortcuts)
}

// Build flags free game levels never grant, and the ones they always do.
const (
	BuildResearchBuildings = data.BuildResearch | data.BuildLabo
	BuildFreeGameForced    = data.BuildFactory | data.BuildGFlat | data.BuildFlagPole
)
