package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

func TestCreateObject(t *testing.T) {
	m := NewObjectManager()

	t.Run("vehicle with power gets a cell", func(t *testing.T) {
		obj, err := m.CreateObject(engine.CreateParams{
			Type: data.ObjectMobileWA, Pos: mgl32.Vec3{4, 0, 8}, Power: 0.5, Team: 1, ID: -1, Run: -1,
		})
		require.NoError(t, err)
		assert.Equal(t, float32(0.5), obj.Energy())
		assert.Equal(t, 2, m.Len())

		cell := obj.(*Object).PowerCell()
		require.NotNil(t, cell)
		assert.True(t, cell.IsTransported())
		assert.Equal(t, obj.Position(), cell.Position())
	})

	t.Run("cell energy is clamped", func(t *testing.T) {
		obj, err := m.CreateObject(engine.CreateParams{Type: data.ObjectPower, Power: 3, ID: -1, Run: -1})
		require.NoError(t, err)
		assert.Equal(t, float32(1), obj.Energy())
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := m.CreateObject(engine.CreateParams{Type: data.ObjectStone, ID: 1, Run: -1})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("null type", func(t *testing.T) {
		_, err := m.CreateObject(engine.CreateParams{Type: data.ObjectNull, ID: -1, Run: -1})
		assert.ErrorIs(t, err, ErrNoType)
	})
}

func TestObjectLimit(t *testing.T) {
	m := NewObjectManager()
	m.Limit = 1

	_, err := m.CreateObject(engine.CreateParams{Type: data.ObjectStone, ID: -1, Run: -1})
	require.NoError(t, err)
	_, err = m.CreateObject(engine.CreateParams{Type: data.ObjectStone, ID: -1, Run: -1})
	assert.ErrorIs(t, err, ErrTooManyObjects)
}

func TestTeamsAndDestroy(t *testing.T) {
	m := NewObjectManager()
	for _, team := range []int{2, 0, 1, 2} {
		_, err := m.CreateObject(engine.CreateParams{Type: data.ObjectStone, Team: team, ID: -1, Run: -1})
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2}, m.ActiveTeams())

	m.DestroyTeam(2, false)
	assert.Equal(t, []int{1}, m.ActiveTeams())
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Destroyed[2])

	near := m.FindNearest(mgl32.Vec3{}, data.ObjectNull)
	require.NotNil(t, near)
	assert.Len(t, m.Objects(), 2)
}

func TestObjectParams(t *testing.T) {
	obj := NewObject(1, data.ObjectHuman, 0, mgl32.Vec3{})
	assert.True(t, obj.Selectable())
	assert.Equal(t, float32(-1), obj.Energy())
	assert.Equal(t, -1, obj.Running())

	obj.Lock = true
	obj.Shield = 0.25
	line := parser.NewLine("CreateObject")
	obj.Write(line)

	other := NewObject(2, data.ObjectHuman, 0, mgl32.Vec3{})
	require.NoError(t, other.Read(line, 4))
	assert.True(t, other.Lock)
	assert.Equal(t, float32(0.25), other.Shield)
}

func TestFlyingHeight(t *testing.T) {
	tr := NewTerrain()
	tr.SetFlyingMaxHeight(100)
	tr.AddFlyingLimit(mgl32.Vec3{}, 40, 20, 10)

	assert.Equal(t, float32(10), tr.FlyingHeight(mgl32.Vec3{5, 0, 0}))
	assert.Equal(t, float32(55), tr.FlyingHeight(mgl32.Vec3{30, 0, 0}))
	assert.Equal(t, float32(100), tr.FlyingHeight(mgl32.Vec3{50, 0, 0}))
}

func TestTerrainGenerate(t *testing.T) {
	tr := NewTerrain()
	assert.Error(t, tr.Generate(engine.TerrainGeneration{Mosaic: 0, Brick: 3}))
	require.NoError(t, tr.Generate(engine.TerrainGeneration{Mosaic: 20, Brick: 3}))
	tr.RandomizeRelief()
	assert.Equal(t, []string{"Generate", "RandomizeRelief"}, tr.Calls)
}

func TestPrograms(t *testing.T) {
	s := New()
	s.Programs.Saved["m001002"] = map[int][]engine.Program{
		3: {{Path: "savegame/p/prog003.txt", Runnable: true}},
	}
	obj := NewObject(7, data.ObjectMobileWC, 1, mgl32.Vec3{})

	require.NoError(t, s.Programs.LoadPrograms(obj, "m001002", 3))
	assert.Len(t, obj.Programs(), 1)
	assert.Equal(t, 1, s.Programs.Loaded)

	require.NoError(t, s.Collaborators().Validate())
}
