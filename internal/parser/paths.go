package parser

import (
	"fmt"
	"strings"

	"github.com/colobot/colobot-sub009/internal/data"
)

// DefaultLanguage is the language of untagged and ".E" lines.
const DefaultLanguage = "E"

// LevelPaths is the category/chapter/rank context used to expand %lvl%,
// %chap% and %cat% in resource paths. Exists, when set, is consulted to fall
// back from a missing translated resource to the default language.
type LevelPaths struct {
	Category data.LevelCategory
	Chapter  int
	Rank     int
	Language string
	Exists   func(path string) bool

	hasLevel bool
}

// NewLevelPaths creates a path context for one level.
func NewLevelPaths(category data.LevelCategory, chapter, rank int) *LevelPaths {
	return &LevelPaths{Category: category, Chapter: chapter, Rank: rank, Language: DefaultLanguage, hasLevel: true}
}

// HasLevel reports whether a level is known, which %lvl% requires.
func (lp *LevelPaths) HasLevel() bool {
	return lp != nil && lp.hasLevel
}

func (lp *LevelPaths) CategoryDir() string {
	return "levels/" + lp.Category.Dir()
}

func (lp *LevelPaths) ChapterDir() string {
	return fmt.Sprintf("%s/chapter%03d", lp.CategoryDir(), lp.Chapter)
}

func (lp *LevelPaths) LevelDir() string {
	return fmt.Sprintf("%s/level%03d", lp.ChapterDir(), lp.Rank)
}

func (lp *LevelPaths) language() string {
	if lp == nil || lp.Language == "" {
		return DefaultLanguage
	}
	return lp.Language
}

// Inject expands level placeholders in path. A path left unchanged is
// prefixed with defaultDir. %lng% becomes the current language unless that
// resource does not exist and the default-language one does.
func (lp *LevelPaths) Inject(path, defaultDir string) string {
	out := path
	if lp.HasLevel() {
		out = strings.NewReplacer(
			"%lvl%", lp.LevelDir(),
			"%chap%", lp.ChapterDir(),
			"%cat%", lp.CategoryDir(),
		).Replace(path)
	}
	if out == path && path != "" && defaultDir != "" {
		out = defaultDir + "/" + path
	}

	if !strings.Contains(out, "%lng%") {
		return out
	}

	translated := strings.ReplaceAll(out, "%lng%", lp.language())
	if lp == nil || lp.Exists == nil || lp.Exists(translated) {
		return translated
	}
	fallback := strings.ReplaceAll(out, "%lng%", DefaultLanguage)
	if lp.Exists(fallback) {
		return fallback
	}
	return translated
}

// BuildScenePath returns the resource path of a level file. Rank 0 is the
// chapter title file.
func BuildScenePath(category data.LevelCategory, chapter, rank int) string {
	switch category {
	case data.CategoryWin, data.CategoryLost:
		return fmt.Sprintf("levels/other/%s%03d.txt", category.Dir(), chapter)
	case data.CategoryPerso:
		return "levels/other/perso.txt"
	}

	lp := NewLevelPaths(category, chapter, rank)
	if rank == 0 {
		return lp.ChapterDir() + "/chaptertitle.txt"
	}
	return lp.LevelDir() + "/scene.txt"
}
