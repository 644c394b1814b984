package condition

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

type fakeObject struct {
	id          int
	typ         data.ObjectType
	team        int
	pos         mgl32.Vec3
	energy      float32
	transported bool
}

func (o *fakeObject) ID() int { return o.id }
func (o *fakeObject) Type() data.ObjectType { return o.typ }
func (o *fakeObject) Team() int { return o.team }
func (o *fakeObject) Position() mgl32.Vec3 { return o.pos }
func (o *fakeObject) Energy() float32 { return o.energy }
func (o *fakeObject) IsTransported() bool { return o.transported }
func (o *fakeObject) IsActive() bool { return true }

type world []Object

func (w world) Objects() []Object { return w }

func titanium(n int) world {
	w := make(world, n)
	for i := range w {
		w[i] = &fakeObject{id: i + 1, typ: data.ObjectMetal, energy: -1}
	}
	return w
}

func line(t *testing.T, text string) *parser.Line {
	t.Helper()
	p := parser.New("")
	require.NoError(t, p.LoadReader("scene.txt", strings.NewReader(text)))
	require.Len(t, p.Lines(), 1)
	return p.Lines()[0]
}

func TestObjectConditionDefaults(t *testing.T) {
	var c ObjectCondition
	require.NoError(t, c.Read(line(t, "EndMissionTake"), 4))

	assert.Equal(t, mgl32.Vec3{}, c.Pos)
	assert.Equal(t, float32(4000), c.Dist)
	assert.Equal(t, data.ObjectNull, c.Type)
	assert.Equal(t, float32(-1), c.PowerMin)
	assert.Equal(t, float32(100), c.PowerMax)
	assert.True(t, c.CountTransported)
}

func TestObjectConditionFilters(t *testing.T) {
	var c ObjectCondition
	require.NoError(t, c.Read(line(t, "EndMissionTake pos=10;10 dist=5 type=TrackedShooter team=2 powermin=0.5"), 1))

	w := world{
		&fakeObject{typ: data.ObjectMobileTC, team: 2, pos: mgl32.Vec3{12, 50, 12}, energy: 1},
		&fakeObject{typ: data.ObjectMobileTC, team: 1, pos: mgl32.Vec3{10, 0, 10}, energy: 1},
		&fakeObject{typ: data.ObjectMobileTC, team: 2, pos: mgl32.Vec3{30, 0, 10}, energy: 1},
		&fakeObject{typ: data.ObjectMobileTC, team: 2, pos: mgl32.Vec3{10, 0, 10}, energy: 0.2},
		&fakeObject{typ: data.ObjectMobileWC, team: 2, pos: mgl32.Vec3{10, 0, 10}, energy: 1},
	}
	assert.Equal(t, 1, c.CountObjects(w))

	t.Run("drive and tool", func(t *testing.T) {
		var c ObjectCondition
		require.NoError(t, c.Read(line(t, "EndMissionTake drive=Tracked tool=Shooter"), 1))
		assert.Equal(t, 4, c.CountObjects(w))
	})

	t.Run("transported", func(t *testing.T) {
		var c ObjectCondition
		require.NoError(t, c.Read(line(t, "EndMissionTake type=PowerCell countTransported=false"), 1))
		carried := world{
			&fakeObject{typ: data.ObjectPower, energy: 1, transported: true},
			&fakeObject{typ: data.ObjectPower, energy: 1},
		}
		assert.Equal(t, 1, c.CountObjects(carried))
	})
}

func TestSceneConditionBoundsAreStrict(t *testing.T) {
	var c SceneCondition
	require.NoError(t, c.Read(line(t, "EndMissionTake type=Titanium"), 1))
	require.Equal(t, 1, c.Min)
	require.Equal(t, 9999, c.Max)

	assert.False(t, c.Check(titanium(1)))
	assert.True(t, c.Check(titanium(2)))
	assert.True(t, c.Check(titanium(9998)))
	assert.False(t, c.Check(titanium(9999)))
}

func TestSceneEndConditionResult(t *testing.T) {
	var c SceneEndCondition
	require.NoError(t, c.Read(line(t, "EndMissionTake type=Titanium min=2 lost=1"), 1))

	assert.Equal(t, Lost, c.MissionResult(titanium(1)))
	assert.Equal(t, NotTerminated, c.MissionResult(titanium(2)))
	assert.Equal(t, Won, c.MissionResult(titanium(3)))

	c.Lost = -1
	assert.Equal(t, NotTerminated, c.MissionResult(titanium(0)))
}

func TestGroupImmediateShortCircuits(t *testing.T) {
	immediate := &SceneEndCondition{SceneCondition: SceneCondition{ObjectCondition: NewObjectCondition(1), Min: -1, Max: 9999}, Lost: -1, Immediat: true}
	losing := &SceneEndCondition{SceneCondition: SceneCondition{ObjectCondition: NewObjectCondition(1), Min: -1, Max: 9999}, Lost: 0}
	losing.Type = data.ObjectMobileWA

	w := titanium(3)
	require.Equal(t, Lost, losing.MissionResult(w))

	assert.Equal(t, Won, EvaluateGroup([]*SceneEndCondition{immediate, losing}, w))
	assert.Equal(t, Lost, EvaluateGroup([]*SceneEndCondition{losing, immediate}, w))
}

func TestGroupWithOnlyLoseChecksNeverWins(t *testing.T) {
	guard := &SceneEndCondition{SceneCondition: SceneCondition{ObjectCondition: NewObjectCondition(1), Min: 0, Max: 9999}, Lost: 0}

	assert.Equal(t, NotTerminated, EvaluateGroup([]*SceneEndCondition{guard}, titanium(3)))
	assert.Equal(t, NotTerminated, EvaluateGroup(nil, titanium(3)))
}

func TestGroupByTeam(t *testing.T) {
	a := &SceneEndCondition{WinTeam: 2}
	b := &SceneEndCondition{WinTeam: 1}
	c := &SceneEndCondition{WinTeam: 2}

	groups := GroupByTeam([]*SceneEndCondition{a, b, c})
	assert.Equal(t, []int{1, 2}, Teams(groups))
	assert.Equal(t, []*SceneEndCondition{a, c}, groups[2])
}

func TestAudioChangeFiresOnce(t *testing.T) {
	var c AudioChangeCondition
	require.NoError(t, c.Read(line(t, `AudioChange type=Titanium min=0 filename="Prototype.ogg"`), 1))
	assert.Equal(t, "music/Prototype.ogg", c.Music)
	assert.True(t, c.Repeat)

	assert.False(t, c.Fire(titanium(0)))
	assert.True(t, c.Fire(titanium(1)))
	assert.False(t, c.Fire(titanium(1)))
}
