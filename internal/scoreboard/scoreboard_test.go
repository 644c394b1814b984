package scoreboard

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

type object struct {
	typ  data.ObjectType
	team int
}

func (o *object) ID() int { return 0 }
func (o *object) Type() data.ObjectType { return o.typ }
func (o *object) Team() int { return o.team }
func (o *object) Position() mgl32.Vec3 { return mgl32.Vec3{} }
func (o *object) Energy() float32 { return -1 }
func (o *object) IsTransported() bool { return false }
func (o *object) IsActive() bool { return true }

type population []condition.Object

func (p population) Objects() []condition.Object { return p }

func many(n int, typ data.ObjectType) population {
	p := make(population, n)
	for i := range p {
		p[i] = &object{typ: typ}
	}
	return p
}

func readLine(t *testing.T, text string) *parser.Line {
	t.Helper()
	p := parser.New("")
	require.NoError(t, p.LoadReader("scene.txt", strings.NewReader(text)))
	return p.Lines()[0]
}

func TestObjectRuleDeltaScoring(t *testing.T) {
	sb := New(data.SortID, nil)
	rule := &ObjectRule{}
	require.NoError(t, rule.Read(readLine(t, "ScoreboardObjectRule type=Titanium score=5 winTeam=1"), 4))
	sb.AddObjectRule(rule)

	sb.UpdateObjectCount(many(3, data.ObjectMetal))
	assert.Equal(t, 0, sb.Score(1).Points)

	sb.UpdateObjectCount(many(5, data.ObjectMetal))
	assert.Equal(t, 10, sb.Score(1).Points)

	sb.UpdateObjectCount(many(2, data.ObjectMetal))
	assert.Equal(t, -5, sb.Score(1).Points)
}

func TestProcessKill(t *testing.T) {
	sb := New(data.SortID, nil)
	rule := &KillRule{}
	require.NoError(t, rule.Read(readLine(t, "ScoreboardKillRule type=WheeledShooter team=1 score=3"), 1))
	sb.AddKillRule(rule)

	enemy := &object{typ: data.ObjectMobileWC, team: 2}
	friend := &object{typ: data.ObjectMobileWC, team: 1}

	t.Run("neutral killer scores nothing", func(t *testing.T) {
		sb.ProcessKill(enemy, nil)
		sb.ProcessKill(enemy, &object{typ: data.ObjectMobileWC, team: 0})
		assert.Empty(t, sb.Teams())
	})

	t.Run("matching kill", func(t *testing.T) {
		sb.ProcessKill(enemy, &object{typ: data.ObjectMobileWC, team: 1})
		assert.Equal(t, 3, sb.Score(1).Points)
	})

	t.Run("rule for another team", func(t *testing.T) {
		sb.ProcessKill(friend, &object{typ: data.ObjectMobileWC, team: 2})
		assert.Equal(t, 0, sb.Score(2).Points)
	})

	t.Run("friendly fire", func(t *testing.T) {
		sb.ProcessKill(friend, &object{typ: data.ObjectMobileWC, team: 1})
		assert.Equal(t, 3, sb.Score(1).Points)

		rule.FriendlyFire = true
		sb.ProcessKill(friend, &object{typ: data.ObjectMobileWC, team: 1})
		assert.Equal(t, 6, sb.Score(1).Points)
	})

	t.Run("target type filter", func(t *testing.T) {
		sb.ProcessKill(&object{typ: data.ObjectMetal, team: 2}, &object{typ: data.ObjectMobileWC, team: 1})
		assert.Equal(t, 6, sb.Score(1).Points)
	})
}

func TestProcessEndTakeOrder(t *testing.T) {
	sb := New(data.SortID, nil)
	sb.AddEndTakeRule(&EndTakeRule{Score: 100, Order: 1})
	sb.AddEndTakeRule(&EndTakeRule{Score: 10})
	sb.AddEndTakeRule(&EndTakeRule{Score: 1, Team: 3})

	sb.ProcessEndTake(2)
	sb.ProcessEndTake(3)

	assert.Equal(t, 110, sb.Score(2).Points)
	assert.Equal(t, 11, sb.Score(3).Points)
}

func TestSortedScores(t *testing.T) {
	now := float32(0)
	sb := New(data.SortPoints, func() float32 { return now })
	sb.TrackTeam(4)

	now = 5
	sb.AddPoints(3, 10)
	now = 2
	sb.AddPoints(1, 10)
	now = 7
	sb.AddPoints(2, 20)

	var order []int
	for _, ts := range sb.SortedScores() {
		order = append(order, ts.Team)
	}
	assert.Equal(t, []int{2, 1, 3, 4}, order)

	sb.Sort = data.SortID
	order = order[:0]
	for _, ts := range sb.SortedScores() {
		order = append(order, ts.Team)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, order)
	assert.Equal(t, float32(2), sb.Score(1).Time)
}
