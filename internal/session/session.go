// Package session ties a level build to a player: it loads the profile,
// builds the scene, runs the frame loop until the mission ends and saves the
// game.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/command"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/mission"
	"github.com/colobot/colobot-sub009/internal/parser"
	"github.com/colobot/colobot-sub009/internal/persistence"
	"github.com/colobot/colobot-sub009/internal/rules"
	"github.com/colobot/colobot-sub009/internal/sim"
)

// Options configure a session.
type Options struct {
	DataDir  string
	SaveDir  string
	Player   string
	Language string
	Log      *logrus.Logger
	Progress engine.ProgressReporter
	// Journal, when set, receives the mission events of the frame loop.
	Journal *Journal
}

// Session manages one player's run through a level: build, frames, save.
type Session struct {
	opts    Options
	log     *logrus.Logger
	slots   *persistence.SlotManager
	profile *persistence.Profile
	builder *engine.Builder

	sim     *sim.Sim
	world   *engine.World
	level   engine.LevelRef
	checker *mission.Checker
	frame   int
}

// New loads the player's profile and prepares an empty world.
func New(opts Options) (*Session, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}

	slots := persistence.NewSlotManager(opts.SaveDir)
	profile, err := persistence.LoadProfile(opts.Player, slots.ProfilePath(opts.Player))
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	s := &Session{
		opts:    opts,
		log:     log,
		slots:   slots,
		profile: profile,
		world:   engine.NewWorld(),
	}
	s.builder = engine.NewBuilder(command.Table(), engine.Collaborators{}, log)
	s.builder.DataDir = opts.DataDir
	if opts.Language != "" {
		s.builder.Language = opts.Language
	}
	if opts.Progress != nil {
		s.builder.Progress = opts.Progress
	}
	s.reset(true)
	return s, nil
}

// reset gives the builder fresh collaborators. A level reset keeps terrain
// and renderer and only recreates the objects.
func (s *Session) reset(full bool) {
	if full || s.sim == nil {
		s.sim = sim.New()
	} else {
		s.sim.Objects.Clear()
	}

	collab := s.sim.Collaborators()
	collab.Profile = s.profile
	collab.Scenes = s.slots.Loader()
	s.builder.Collab = collab
}

// Load builds level in mode. The world keeps whatever the failing line left
// behind when an error is returned.
func (s *Session) Load(ctx context.Context, level engine.LevelRef, mode engine.LoadMode) error {
	s.reset(mode != engine.ModeReset)
	s.level = level
	s.frame = 0

	if err := s.builder.BuildScene(ctx, s.world, level, mode); err != nil {
		return err
	}
	s.checker = mission.NewChecker(s.world, s.sim.Objects, s.sim.Audio, s.log.WithField("level", level.Key()))
	return nil
}

// Restore reloads a save slot: the level named in the snapshot is rebuilt
// and the saved objects replace the level's own.
func (s *Session) Restore(ctx context.Context, slot string) error {
	path, err := s.slots.Open(s.opts.Player, slot)
	if err != nil {
		return err
	}
	snap, err := persistence.ReadSnapshot(path)
	if err != nil {
		return err
	}

	s.builder.SavePath = path
	return s.Load(ctx, snap.Level, engine.ModeLoadSaved)
}

// Save writes the current game into a slot.
func (s *Session) Save(slot string) (string, error) {
	return s.slots.Save(s.opts.Player, slot, s.world, s.level, s.sim.Objects.AllObjects())
}

// Run advances the frame loop by dt until the mission ends or maxFrames
// have passed. A won mission is recorded in the profile.
func (s *Session) Run(maxFrames int, dt float32) (mission.Result, error) {
	if s.checker == nil {
		return mission.NotTerminated, fmt.Errorf("no level loaded")
	}

	finished := make(map[int]bool)
	result := mission.NotTerminated
	for i := 0; i < maxFrames && result == mission.NotTerminated; i++ {
		s.frame++
		result = s.checker.Frame(dt)

		for team := range s.world.TeamFinished {
			if finished[team] {
				continue
			}
			finished[team] = true
			s.record(Event{Kind: EventTeamFinished, Team: team})
		}
	}

	if result == mission.NotTerminated {
		return result, nil
	}
	s.record(Event{Kind: EventMissionEnded, Result: result.String()})

	if result == mission.Won {
		s.profile.MarkPassed(s.level.Category, s.level.Chapter, s.level.Rank)
		s.profile.UpdateChapterPassed(s.level.Category, s.level.Chapter, s.chapterLevels())
		if err := s.profile.Save(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// chapterLevels counts the level directories of the current chapter.
func (s *Session) chapterLevels() int {
	dir := parser.NewLevelPaths(s.level.Category, s.level.Chapter, 0).ChapterDir()
	entries, err := os.ReadDir(filepath.Join(s.opts.DataDir, dir))
	if err != nil {
		return 0
	}
	return lo.CountBy(entries, func(e os.DirEntry) bool {
		var rank int
		_, err := fmt.Sscanf(e.Name(), "level%03d", &rank)
		return e.IsDir() && err == nil && rank > 0
	})
}

func (s *Session) record(evt Event) {
	if s.opts.Journal == nil {
		return
	}
	evt.Frame = s.frame
	evt.Time = s.world.GameTime
	if err := s.opts.Journal.Append(evt); err != nil {
		s.log.WithError(err).Warn("failed to journal mission event")
	}
}

// Check evaluates a CEL condition against the built scene.
func (s *Session) Check(expr string) (bool, error) {
	reg, err := rules.NewSceneRegistry(s.sim.Objects)
	if err != nil {
		return false, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	return reg.Check(expr, rules.BuildEvalContext(s.world, s.sim.Objects))
}

// Eval evaluates any CEL expression against the built scene.
func (s *Session) Eval(expr string) (any, error) {
	reg, err := rules.NewSceneRegistry(s.sim.Objects)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	return reg.Eval(expr, rules.BuildEvalContext(s.world, s.sim.Objects))
}

func (s *Session) World() *engine.World { return s.world }
func (s *Session) Sim() *sim.Sim { return s.sim }
func (s *Session) Level() engine.LevelRef { return s.level }
func (s *Session) Profile() *persistence.Profile { return s.profile }
func (s *Session) Slots() *persistence.SlotManager { return s.slots }
func (s *Session) Checker() *mission.Checker { return s.checker }
