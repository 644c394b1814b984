package rules

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/scoreboard"
)

// ContextFromObject converts a live object into a map suitable for CEL
// evaluation. Positions are in level units.
func ContextFromObject(o engine.Object, unit float32) map[string]any {
	if o == nil {
		return nil
	}
	if unit == 0 {
		unit = engine.DefaultUnit
	}
	pos := o.Position().Mul(1 / unit)
	return map[string]any{
		"id":          int64(o.ID()),
		"type":        data.FromObjectType(o.Type()),
		"team":        int64(o.Team()),
		"pos":         []float64{float64(pos.X()), float64(pos.Y()), float64(pos.Z())},
		"energy":      float64(o.Energy()),
		"transported": o.IsTransported(),
		"active":      o.IsActive(),
		"selectable":  o.Selectable(),
	}
}

// ContextFromWorld exposes the level settings of a built world.
func ContextFromWorld(w *engine.World) map[string]any {
	if w == nil {
		return nil
	}
	return map[string]any{
		"title":           w.Title,
		"unit":            float64(w.Unit),
		"mission_type":    w.MissionType.String(),
		"build":           int64(w.Build),
		"research_enable": int64(w.ResearchEnable),
		"research_done":   int64(w.ResearchDone[0]),
		"end_takes":       int64(len(w.EndTake)),
		"audio_changes":   int64(len(w.AudioChange)),
		"timeout":         float64(w.EndTakeTimeout),
		"win_delay":       float64(w.EndTakeWinDelay),
		"lost_delay":      float64(w.EndTakeLostDelay),
		"object_count":    int64(w.ObjectCount),
		"has_scoreboard":  w.Scoreboard != nil,
		"has_controller":  w.Controller != nil,
		"selected":        ContextFromObject(w.Selected, w.Unit),
		"tokens":          lo.Keys(w.Tokens),
		"team_names": lo.MapEntries(w.TeamNames, func(team int, name string) (string, string) {
			return strconv.Itoa(team), name
		}),
	}
}

// BuildEvalContext creates the standard scene context: the world, its
// objects, the scoreboard standings and the active teams.
func BuildEvalContext(w *engine.World, objects engine.ObjectManager) map[string]any {
	res := map[string]any{
		"world":   ContextFromWorld(w),
		"objects": []map[string]any{},
		"scores":  []map[string]any{},
		"teams":   []int64{},
	}
	if objects == nil {
		return res
	}

	unit := engine.DefaultUnit
	if w != nil {
		unit = w.Unit
	}
	res["objects"] = lo.Map(objects.AllObjects(), func(o engine.Object, _ int) map[string]any {
		return ContextFromObject(o, unit)
	})
	res["teams"] = lo.Map(objects.ActiveTeams(), func(t int, _ int) int64 { return int64(t) })

	if w != nil && w.Scoreboard != nil {
		res["scores"] = lo.Map(w.Scoreboard.SortedScores(), func(ts scoreboard.TeamScore, _ int) map[string]any {
			return map[string]any{
				"team":   int64(ts.Team),
				"points": int64(ts.Score.Points),
				"time":   float64(ts.Score.Time),
			}
		})
	}
	return res
}

// NewSceneRegistry returns a registry whose count() looks at objects.
func NewSceneRegistry(objects engine.ObjectManager) (*Registry, error) {
	return NewRegistry(func(typeName string) int {
		t, ok := data.ObjectTypeByName(typeName)
		if !ok || objects == nil {
			return 0
		}
		return lo.CountBy(objects.AllObjects(), func(o engine.Object) bool {
			return o.Type() == t && o.IsActive()
		})
	})
}
