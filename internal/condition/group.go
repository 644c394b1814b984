package condition

import (
	"sort"

	"github.com/samber/lo"
)

// EvaluateGroup combines the end conditions of one team. The first condition
// that does not report Won decides the result, an immediate condition that
// reports Won ends the evaluation early, and a group whose conditions are
// all lose checks never wins.
func EvaluateGroup(conds []*SceneEndCondition, src ObjectSource) Result {
	final := Won
	hasWinning := false

	for _, c := range conds {
		r := c.MissionResult(src)

		if !c.CanLose() {
			hasWinning = true
		}
		if r == Won && c.Immediat {
			hasWinning = true
			final = r
			break
		}
		if r != Won {
			final = r
			break
		}
	}

	if final == Won && !hasWinning {
		return NotTerminated
	}
	return final
}

// GroupByTeam splits end conditions by winning team, keeping file order
// within each team.
func GroupByTeam(conds []*SceneEndCondition) map[int][]*SceneEndCondition {
	return lo.GroupBy(conds, func(c *SceneEndCondition) int { return c.WinTeam })
}

// Teams returns the team ids of a grouping in ascending order.
func Teams(groups map[int][]*SceneEndCondition) []int {
	teams := lo.Keys(groups)
	sort.Ints(teams)
	return teams
}
