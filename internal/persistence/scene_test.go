package persistence

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/sim"
)

var level = engine.LevelRef{Category: data.CategoryMissions, Chapter: 1, Rank: 2}

func populate(t *testing.T) (*sim.Sim, *engine.World) {
	t.Helper()
	s := sim.New()
	w := engine.NewWorld()
	w.Title = "Landing"
	w.GameTime = 42.5
	w.MarkResearchDone(data.ResearchTank, 0)

	robot, err := s.Objects.CreateObject(engine.CreateParams{
		Type: data.ObjectMobileWA, ID: 10, Pos: mgl32.Vec3{8, 0, 4}, Angle: mgl32.DegToRad(90),
		Power: 0.75, Team: 1, Run: 0,
		Programs: []engine.Program{{Path: "ai/patrol.txt", Runnable: true}},
	})
	require.NoError(t, err)
	robot.SetProgramStorageIndex(3)
	robot.(*sim.Object).Lock = true

	_, err = s.Objects.CreateObject(engine.CreateParams{Type: data.ObjectStone, ID: 20, Pos: mgl32.Vec3{-4, 0, 0}, Run: -1})
	require.NoError(t, err)

	w.Selected = robot
	return s, w
}

func TestWriteScene(t *testing.T) {
	s, w := populate(t)

	var buf bytes.Buffer
	require.NoError(t, WriteScene(&buf, w, level, s.Objects.AllObjects(), time.Unix(1000, 0)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, `Title text="Landing"`, lines[0])
	assert.Equal(t, "Version maj=1 min=2", lines[1])
	assert.Equal(t, "Created date=1000", lines[2])
	assert.Equal(t, `Mission base="missions" chap=1 rank=2 gametime=42.5`, lines[3])
	assert.True(t, strings.HasPrefix(lines[5], "CreatePower "), lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "CreateObject "), lines[6])
	assert.Contains(t, lines[6], "pos=2;1")
	assert.Contains(t, lines[6], "select=1")
	assert.Contains(t, lines[6], "run=1")
	assert.Contains(t, lines[6], "programStorageIndex=3")
	assert.Contains(t, lines[6], "lock=1")
	assert.NotContains(t, lines[7], "select")
}

func TestSaveAndRestore(t *testing.T) {
	s, w := populate(t)
	path := filepath.Join(t.TempDir(), "slot", SceneFile)
	require.NoError(t, SaveScene(path, w, level, s.Objects.AllObjects()))

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "Landing", snap.Title)
	assert.Equal(t, level.Category, snap.Level.Category)
	assert.Equal(t, 2, snap.Level.Rank)
	assert.Len(t, snap.Objects, 3)

	logger, _ := test.NewNullLogger()
	fresh := sim.New()
	ctx := &engine.SceneBuildContext{
		Mode:   engine.ModeLoadSaved,
		World:  engine.NewWorld(),
		Collab: fresh.Collaborators(),
		Log:    logrus.NewEntry(logger),
		Unit:   engine.DefaultUnit,
	}

	selected, err := snap.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, selected)
	assert.Equal(t, 10, selected.ID())
	assert.Equal(t, float32(42.5), ctx.World.GameTime)
	assert.True(t, ctx.World.IsResearchDone(data.ResearchTank, 0))

	robot := fresh.Objects.Get(10)
	require.NotNil(t, robot)
	assert.InDelta(t, 8, robot.Position().X(), 1e-4)
	assert.InDelta(t, mgl32.DegToRad(90), robot.Angle(), 1e-4)
	assert.Equal(t, float32(0.75), robot.Energy())
	assert.Equal(t, 3, robot.ProgramStorageIndex())
	assert.Equal(t, 0, robot.Running())
	assert.True(t, robot.Lock)
	assert.Equal(t, 3, fresh.Objects.Len())
}

func TestReadSnapshotRejectsNewerVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SceneFile)
	require.NoError(t, os.WriteFile(path, []byte("Version maj=9 min=0\n"), 0644))

	_, err := ReadSnapshot(path)
	assert.ErrorContains(t, err, "newer")
}
