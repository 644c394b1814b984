package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/colobot/colobot-sub009/internal/engine"
)

// SlotManager maps players and save slot names onto the save directory.
// A slot is savegame/<player>/<slot>/ holding data.sav and cbot.run.
type SlotManager struct {
	SaveDir string
	// RuntimeVersion is stamped on the program states written.
	RuntimeVersion uint32
}

// NewSlotManager returns a manager rooted at saveDir.
func NewSlotManager(saveDir string) *SlotManager {
	return &SlotManager{SaveDir: saveDir}
}

// PlayerPath is the directory of all of a player's files.
func (m *SlotManager) PlayerPath(player string) string {
	return filepath.Join(m.SaveDir, player)
}

// SlotPath is the directory of one save slot.
func (m *SlotManager) SlotPath(player, slot string) string {
	return filepath.Join(m.SaveDir, player, slot)
}

// ScenePath is the snapshot file of a slot.
func (m *SlotManager) ScenePath(player, slot string) string {
	return filepath.Join(m.SlotPath(player, slot), SceneFile)
}

// ProfilePath is where a player's profile lives.
func (m *SlotManager) ProfilePath(player string) string {
	return filepath.Join(m.PlayerPath(player), "profile.yaml")
}

// Create makes the slot directory and returns its path.
func (m *SlotManager) Create(player, slot string) (string, error) {
	path := m.SlotPath(player, slot)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return path, nil
}

// Open checks the slot holds a snapshot and returns the snapshot path.
func (m *SlotManager) Open(player, slot string) (string, error) {
	path := m.ScenePath(player, slot)
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return "", fmt.Errorf("save slot %s/%s not found", player, slot)
	}
	return path, nil
}

// List returns the player's slot names that hold a snapshot, sorted.
func (m *SlotManager) List(player string) ([]string, error) {
	entries, err := os.ReadDir(m.PlayerPath(player))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list saves of %s: %w", player, err)
	}

	var slots []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(m.PlayerPath(player), e.Name(), SceneFile)); err == nil {
			slots = append(slots, e.Name())
		}
	}
	sort.Strings(slots)
	return slots, nil
}

// Save writes the world's snapshot and its program states into a slot.
func (m *SlotManager) Save(player, slot string, w *engine.World, level engine.LevelRef, objects []engine.Object) (string, error) {
	dir, err := m.Create(player, slot)
	if err != nil {
		return "", err
	}

	scenePath := filepath.Join(dir, SceneFile)
	if err := SaveScene(scenePath, w, level, objects); err != nil {
		return "", err
	}

	stackPath := filepath.Join(dir, StackFile)
	f, err := os.Create(stackPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", stackPath, err)
	}
	defer f.Close()
	if _, err := WriteStacks(f, m.RuntimeVersion, objects); err != nil {
		return "", err
	}
	return scenePath, nil
}

// Loader returns the scene reader that restores this manager's slots.
func (m *SlotManager) Loader() *SceneLoader {
	return &SceneLoader{RuntimeVersion: m.RuntimeVersion}
}
