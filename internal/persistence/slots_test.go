package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
)

func TestSlotManager(t *testing.T) {
	m := NewSlotManager(t.TempDir())
	m.RuntimeVersion = 3

	_, err := m.Open("ada", "quick")
	assert.Error(t, err)

	s, w := populate(t)
	robot := s.Objects.Get(10)
	robot.SetStackState([]byte("frame"))

	path, err := m.Save("ada", "quick", w, level, s.Objects.AllObjects())
	require.NoError(t, err)
	assert.Equal(t, m.ScenePath("ada", "quick"), path)
	assert.FileExists(t, filepath.Join(m.SlotPath("ada", "quick"), StackFile))

	opened, err := m.Open("ada", "quick")
	require.NoError(t, err)
	assert.Equal(t, path, opened)

	require.NoError(t, os.MkdirAll(m.SlotPath("ada", "empty"), 0755))
	slots, err := m.List("ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"quick"}, slots)

	none, err := m.List("nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ada", "profile.yaml")

	p, err := LoadProfile("ada", path)
	require.NoError(t, err)
	assert.False(t, p.LevelPassed(data.CategoryMissions, 9, 0))

	p.MarkPassed(data.CategoryMissions, 9, 4)
	assert.False(t, p.UpdateChapterPassed(data.CategoryMissions, 9, 4))
	assert.False(t, p.LevelPassed(data.CategoryMissions, 9, 0))
	for rank := 1; rank <= 3; rank++ {
		p.MarkPassed(data.CategoryMissions, 9, rank)
	}
	assert.True(t, p.UpdateChapterPassed(data.CategoryMissions, 9, 4))
	p.SetFreeGameResearchUnlock(data.ResearchTank | data.ResearchFly)
	p.SetFreeGameBuildUnlock(data.BuildFactory)
	require.NoError(t, p.Save())

	loaded, err := LoadProfile("ada", path)
	require.NoError(t, err)
	assert.True(t, loaded.LevelPassed(data.CategoryMissions, 9, 0))
	assert.True(t, loaded.LevelPassed(data.CategoryMissions, 9, 4))
	assert.False(t, loaded.LevelPassed(data.CategoryMissions, 9, 5))
	assert.False(t, loaded.UpdateChapterPassed(data.CategoryMissions, 9, 5))
	assert.False(t, loaded.LevelPassed(data.CategoryMissions, 9, 0))
	assert.False(t, loaded.LevelPassed(data.CategoryMissions, 1, 0))
	assert.Equal(t, data.ResearchTank|data.ResearchFly, loaded.FreeGameResearchUnlock())
	assert.Equal(t, data.BuildFactory, loaded.FreeGameBuildUnlock())
}

func TestChapterNeedsEveryLevel(t *testing.T) {
	p := NewProfile("ada", "")
	p.MarkPassed(data.CategoryMissions, 9, 1)
	assert.False(t, p.UpdateChapterPassed(data.CategoryMissions, 9, 3))
	assert.False(t, p.LevelPassed(data.CategoryMissions, 9, 0))
	assert.False(t, p.UpdateChapterPassed(data.CategoryMissions, 8, 0))
}

func TestProfileWithoutPath(t *testing.T) {
	assert.Error(t, NewProfile("ada", "").Save())
}
