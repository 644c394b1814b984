package scoreboard

import (
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
)

// Score is the standing of one team. Time is the game time of the last change
// and breaks ties between equal points.
type Score struct {
	Points int     `json:"points" yaml:"points"`
	Time   float32 `json:"time" yaml:"time"`
}

// TeamScore pairs a team with its score.
type TeamScore struct {
	Team  int   `json:"team" yaml:"team"`
	Score Score `json:"score" yaml:"score"`
}

// Clock returns the current game time.
type Clock func() float32

// Scoreboard accumulates points per team from kill, population and
// end-of-mission rules.
type Scoreboard struct {
	Sort data.SortType
	Log  logrus.FieldLogger

	killRules    []*KillRule
	objectRules  []*ObjectRule
	endTakeRules []*EndTakeRule

	scores        map[int]*Score
	finishCounter int
	clock         Clock
}

// New creates an empty scoreboard. A nil clock stamps every score with 0.
func New(sortType data.SortType, clock Clock) *Scoreboard {
	if clock == nil {
		clock = func() float32 { return 0 }
	}
	return &Scoreboard{
		Sort:   sortType,
		Log:    logrus.StandardLogger(),
		scores: make(map[int]*Score),
		clock:  clock,
	}
}

// SetClock replaces the game time source.
func (s *Scoreboard) SetClock(clock Clock) {
	if clock != nil {
		s.clock = clock
	}
}

func (s *Scoreboard) AddKillRule(r *KillRule) { s.killRules = append(s.killRules, r) }
func (s *Scoreboard) AddObjectRule(r *ObjectRule) { s.objectRules = append(s.objectRules, r) }
func (s *Scoreboard) AddEndTakeRule(r *EndTakeRule) { s.endTakeRules = append(s.endTakeRules, r) }

func (s *Scoreboard) KillRules() []*KillRule { return s.killRules }
func (s *Scoreboard) ObjectRules() []*ObjectRule { return s.objectRules }
func (s *Scoreboard) EndTakeRules() []*EndTakeRule { return s.endTakeRules }

// TrackTeam makes a team appear in the results even before it scores.
func (s *Scoreboard) TrackTeam(team int) {
	if _, ok := s.scores[team]; !ok {
		s.scores[team] = &Score{}
	}
}

// ProcessKill applies the kill rules to target destroyed by killer.
func (s *Scoreboard) ProcessKill(target, killer condition.Object) {
	if killer == nil || killer.Team() == 0 {
		return
	}

	for _, rule := range s.killRules {
		if rule.Team != 0 && rule.Team != killer.Team() {
			continue
		}
		if !rule.MatchesIgnoringTeam(target) || !rule.InRange(target.Position()) {
			continue
		}
		if killer.Team() == target.Team() && !rule.FriendlyFire {
			continue
		}
		s.AddPoints(killer.Team(), rule.Score)
	}
}

// UpdateObjectCount applies the population rules. The first call only
// records each rule's starting count.
func (s *Scoreboard) UpdateObjectCount(src condition.ObjectSource) {
	for _, rule := range s.objectRules {
		count := rule.CountObjects(src)
		if !rule.counted {
			rule.counted = true
			rule.lastCount = count
			continue
		}

		delta := count - rule.lastCount
		rule.lastCount = count
		if delta != 0 {
			s.AddPoints(rule.WinTeam, rule.Score*delta)
		}
	}
}

// ProcessEndTake records that team reached its end condition.
func (s *Scoreboard) ProcessEndTake(team int) {
	s.finishCounter++

	for _, rule := range s.endTakeRules {
		if rule.Team != 0 && rule.Team != team {
			continue
		}
		if rule.Order != 0 && rule.Order != s.finishCounter {
			continue
		}
		s.AddPoints(team, rule.Score)
	}
}

// AddPoints adds points to a team and stamps the change time.
func (s *Scoreboard) AddPoints(team, points int) {
	s.TrackTeam(team)
	sc := s.scores[team]
	sc.Points += points
	sc.Time = s.clock()

	s.Log.WithFields(logrus.Fields{"team": team, "points": points, "total": sc.Points}).Debug("score changed")
}

// Score returns the score of a team.
func (s *Scoreboard) Score(team int) Score {
	if sc, ok := s.scores[team]; ok {
		return *sc
	}
	return Score{}
}

// SetScore overwrites the score of a team.
func (s *Scoreboard) SetScore(team int, score Score) {
	s.scores[team] = &score
}

// Teams returns every team known to the scoreboard in id order.
func (s *Scoreboard) Teams() []int {
	teams := lo.Keys(s.scores)
	sort.Ints(teams)
	return teams
}

// SortedScores returns every known team with its score, ordered by Sort.
func (s *Scoreboard) SortedScores() []TeamScore {
	out := lo.Map(s.Teams(), func(team int, _ int) TeamScore {
		return TeamScore{Team: team, Score: *s.scores[team]}
	})

	if s.Sort == data.SortPoints {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Score, out[j].Score
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			return a.Time < b.Time
		})
	}
	return out
}
