package rules

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/scoreboard"
	"github.com/colobot/colobot-sub009/internal/sim"
)

func TestCELRegistry(t *testing.T) {
	// Fixed count for testing
	count := func(s string) int {
		if s == "Me" {
			return 1
		}
		return 0
	}

	registry, err := NewRegistry(count)
	require.NoError(t, err)

	t.Run("Basic Boolean Expression", func(t *testing.T) {
		ctx := map[string]any{
			"world": map[string]any{"unit": 4.0},
		}
		out, err := registry.Eval("world.unit > 2.0", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Custom Count Function", func(t *testing.T) {
		out, err := registry.Eval("count('Me')", map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out) // CEL returns int64 for IntType
	})

	t.Run("Check rejects non-bool", func(t *testing.T) {
		_, err := registry.Check("count('Me') + 1", map[string]any{})
		assert.Error(t, err)
	})

	t.Run("Compile error", func(t *testing.T) {
		_, err := registry.Eval("world.", map[string]any{})
		assert.Error(t, err)
	})
}

func TestSceneContext(t *testing.T) {
	s := sim.New()
	w := engine.NewWorld()
	w.Title = "Crash site"
	w.TeamNames[1] = "Blue"

	me, err := s.Objects.CreateObject(engine.CreateParams{Type: data.ObjectHuman, Pos: mgl32.Vec3{8, 0, 12}, Team: 1, ID: -1, Run: -1})
	require.NoError(t, err)
	_, err = s.Objects.CreateObject(engine.CreateParams{Type: data.ObjectMobileWA, Power: 0.5, Team: 2, ID: -1, Run: -1})
	require.NoError(t, err)
	w.Selected = me

	w.Scoreboard = scoreboard.New(data.SortPoints, nil)
	w.Scoreboard.AddPoints(2, 30)
	w.Scoreboard.AddPoints(1, 10)

	registry, err := NewSceneRegistry(s.Objects)
	require.NoError(t, err)
	ctx := BuildEvalContext(w, s.Objects)

	cases := []struct {
		expr string
		want bool
	}{
		{"world.title == 'Crash site'", true},
		{"world.selected.type == 'Me'", true},
		{"world.selected.pos[0] == 2.0 && world.selected.pos[2] == 3.0", true},
		{"world.team_names['1'] == 'Blue'", true},
		{"objects.size() == 3", true},
		{"objects.exists(o, o.energy == 0.5 && o.team == 2)", true},
		{"count('PowerCell') == 1", true},
		{"count('Me') == 2", false},
		{"teams == [1, 2]", true},
		{"scores[0].team == 2 && scores[0].points == 30", true},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := registry.Check(tc.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	outcomes := registry.CheckAll([]Assertion{
		{Name: "has human", Expr: "count('Me') >= 1"},
		{Name: "broken", Expr: "nope("},
	}, ctx)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Passed)
	assert.Error(t, outcomes[1].Err)
}
