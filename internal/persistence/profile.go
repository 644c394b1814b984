package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colobot/colobot-sub009/internal/data"
)

// Profile is the player data levels read and update: which levels were
// passed and what the free game unlock pool holds.
type Profile struct {
	Player         string            `yaml:"player"`
	Passed         map[string]bool   `yaml:"passed"`
	ResearchUnlock data.ResearchFlag `yaml:"free_game_research"`
	BuildUnlock    data.BuildFlag    `yaml:"free_game_build"`

	path string
}

// NewProfile creates an empty profile saved at path.
func NewProfile(player, path string) *Profile {
	return &Profile{Player: player, Passed: make(map[string]bool), path: path}
}

// LoadProfile reads the profile at path. A missing file gives a new profile.
func LoadProfile(player, path string) (*Profile, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewProfile(player, path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open profile %s: %w", path, err)
	}
	defer f.Close()

	var p Profile
	if err := yaml.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}

	if p.Passed == nil {
		p.Passed = make(map[string]bool)
	}
	if p.Player == "" {
		p.Player = player
	}
	p.path = path
	return &p, nil
}

// Path is where Save writes.
func (p *Profile) Path() string { return p.path }

// Save writes the profile back to its file.
func (p *Profile) Save() error {
	if p.path == "" {
		return errors.New("profile has no file")
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(p.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", p.path, err)
	}
	return nil
}

func levelKey(category data.LevelCategory, chapter, rank int) string {
	return fmt.Sprintf("%s/%d/%d", category.Dir(), chapter, rank)
}

// MarkPassed records a level as won.
func (p *Profile) MarkPassed(category data.LevelCategory, chapter, rank int) {
	p.Passed[levelKey(category, chapter, rank)] = true
}

// UpdateChapterPassed records the chapter itself, rank 0, as passed when
// each of its levels ranks 1 to levels is. It reports the chapter state.
func (p *Profile) UpdateChapterPassed(category data.LevelCategory, chapter, levels int) bool {
	all := levels > 0
	for rank := 1; all && rank <= levels; rank++ {
		all = p.Passed[levelKey(category, chapter, rank)]
	}
	key := levelKey(category, chapter, 0)
	if all {
		p.Passed[key] = true
	} else {
		delete(p.Passed, key)
	}
	return all
}

// LevelPassed reports whether the level was won. Rank 0 stands for the
// whole chapter, see UpdateChapterPassed.
func (p *Profile) LevelPassed(category data.LevelCategory, chapter, rank int) bool {
	return p.Passed[levelKey(category, chapter, rank)]
}

func (p *Profile) FreeGameResearchUnlock() data.ResearchFlag { return p.ResearchUnlock }

func (p *Profile) SetFreeGameResearchUnlock(flags data.ResearchFlag) { p.ResearchUnlock = flags }

func (p *Profile) FreeGameBuildUnlock() data.BuildFlag { return p.BuildUnlock }

func (p *Profile) SetFreeGameBuildUnlock(flags data.BuildFlag) { p.BuildUnlock = flags }
