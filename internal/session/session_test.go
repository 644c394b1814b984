package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/mission"
)

const firstSteps = `// A small level
Title text="First steps"
TerrainGenerate mosaic=20 brick=3
BeginObject
CreateObject type=Me pos=0;0 select=1
CreateObject type=WheeledGrabber pos=4;4 power=0.5
CreateObject type=TitaniumOre pos=10;10
EndMissionTake pos=0;0 dist=1000 type=Titanium min=0
`

func newSession(t *testing.T) (*Session, *Journal) {
	t.Helper()
	dir := t.TempDir()
	levelDir := filepath.Join(dir, "data", "levels", "missions", "chapter001", "level001")
	require.NoError(t, os.MkdirAll(levelDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(levelDir, "scene.txt"), []byte(firstSteps), 0644))

	journal, err := OpenJournal(filepath.Join(dir, "journal.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })

	logger, _ := test.NewNullLogger()
	s, err := New(Options{
		DataDir: filepath.Join(dir, "data"),
		SaveDir: filepath.Join(dir, "savegame"),
		Player:  "ada",
		Log:     logger,
		Journal: journal,
	})
	require.NoError(t, err)
	return s, journal
}

func TestSessionLifecycle(t *testing.T) {
	s, journal := newSession(t)
	ctx := context.Background()
	level := engine.LevelRef{Category: data.CategoryMissions, Chapter: 1, Rank: 1}

	// 1. Build
	require.NoError(t, s.Load(ctx, level, engine.ModeNormal))
	assert.Equal(t, "First steps", s.World().Title)
	assert.Equal(t, 4, s.Sim().Objects.Len())

	ok, err := s.Check("count('Me') == 1 && world.selected.type == 'Me'")
	require.NoError(t, err)
	assert.True(t, ok)

	// 2. Play without reaching the goal, then save
	result, err := s.Run(10, 0.1)
	require.NoError(t, err)
	assert.Equal(t, mission.NotTerminated, result)

	path, err := s.Save("quick")
	require.NoError(t, err)
	assert.FileExists(t, path)

	// 3. Reach the goal
	_, err = s.Sim().Objects.CreateObject(engine.CreateParams{Type: data.ObjectMetal, ID: -1, Run: -1})
	require.NoError(t, err)
	result, err = s.Run(5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, mission.Won, result)
	assert.True(t, s.Profile().LevelPassed(data.CategoryMissions, 1, 1))
	assert.True(t, s.Profile().LevelPassed(data.CategoryMissions, 1, 0))
	assert.FileExists(t, s.Slots().ProfilePath("ada"))

	events, err := journal.Load()
	require.NoError(t, err)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, EventMissionEnded, last.Kind)
	assert.Equal(t, "won", last.Result)

	// 4. Restore the save: the goal object is gone again
	require.NoError(t, s.Restore(ctx, "quick"))
	assert.Equal(t, level, s.Level())
	assert.InDelta(t, 1.0, s.World().GameTime, 1e-4)

	out, err := s.Eval("count('Titanium')")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out)

	require.NotNil(t, s.World().Selected)
	assert.Equal(t, data.ObjectHuman, s.World().Selected.Type())
	assert.Equal(t, 4, s.Sim().Objects.Len())
}

func TestChapterPassedAfterLastLevel(t *testing.T) {
	s, _ := newSession(t)
	second := filepath.Join(s.opts.DataDir, "levels", "missions", "chapter001", "level002")
	require.NoError(t, os.MkdirAll(second, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(second, "scene.txt"), []byte(firstSteps), 0644))
	ctx := context.Background()

	first := engine.LevelRef{Category: data.CategoryMissions, Chapter: 1, Rank: 1}
	require.NoError(t, s.Load(ctx, first, engine.ModeNormal))
	_, err := s.Sim().Objects.CreateObject(engine.CreateParams{Type: data.ObjectMetal, ID: -1, Run: -1})
	require.NoError(t, err)
	result, err := s.Run(5, 0.1)
	require.NoError(t, err)
	require.Equal(t, mission.Won, result)
	assert.False(t, s.Profile().LevelPassed(data.CategoryMissions, 1, 0))

	require.NoError(t, s.Load(ctx, engine.LevelRef{Category: data.CategoryMissions, Chapter: 1, Rank: 2}, engine.ModeNormal))
	_, err = s.Sim().Objects.CreateObject(engine.CreateParams{Type: data.ObjectMetal, ID: -1, Run: -1})
	require.NoError(t, err)
	result, err = s.Run(5, 0.1)
	require.NoError(t, err)
	require.Equal(t, mission.Won, result)
	assert.True(t, s.Profile().LevelPassed(data.CategoryMissions, 1, 0))
}

func TestSessionRunWithoutLevel(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.Run(1, 0.1)
	assert.Error(t, err)
}

func TestSessionLoadMissingLevel(t *testing.T) {
	s, _ := newSession(t)
	err := s.Load(context.Background(), engine.LevelRef{Category: data.CategoryMissions, Chapter: 9, Rank: 9}, engine.ModeNormal)
	assert.Error(t, err)
}
