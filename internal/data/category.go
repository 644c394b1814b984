package data

import (
	"fmt"
	"strings"
)

// LevelCategory groups levels the way the level browser does.
type LevelCategory int

const (
	CategoryExercises LevelCategory = iota
	CategoryChallenges
	CategoryMissions
	CategoryFreeGame
	CategoryGamePlus
	CategoryCodeBattles
	CategoryCustomLevels
	CategoryWin
	CategoryLost
	CategoryPerso
	CategoryMax
)

var categoryDirs = map[LevelCategory]string{
	CategoryExercises:    "exercises",
	CategoryChallenges:   "challenges",
	CategoryMissions:     "missions",
	CategoryFreeGame:     "freemissions",
	CategoryGamePlus:     "plus",
	CategoryCodeBattles:  "battles",
	CategoryCustomLevels: "custom",
	CategoryWin:          "win",
	CategoryLost:         "lost",
	CategoryPerso:        "perso",
}

// Dir returns the directory name of the category under levels/.
func (c LevelCategory) Dir() string {
	return categoryDirs[c]
}

func (c LevelCategory) String() string {
	return c.Dir()
}

// ParseCategory accepts a category directory name, case-insensitively.
func ParseCategory(s string) (LevelCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, dir := range categoryDirs {
		if dir == s {
			return c, nil
		}
	}
	return CategoryMax, fmt.Errorf("unknown level category %q", s)
}

// Color is an RGBA color with channels nominally in [0, 1].
type Color struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// Gray returns a color with all four channels set to v.
func Gray(v float32) Color {
	return Color{v, v, v, v}
}
