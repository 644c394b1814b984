package sim

import (
	"github.com/colobot/colobot-sub009/internal/engine"
)

// Audio records cached and played music.
type Audio struct {
	Cached []string
	Played []engine.AudioTrack
}

func (a *Audio) CacheMusic(file string) { a.Cached = append(a.Cached, file) }

func (a *Audio) PlayMusic(file string, repeat bool) {
	a.Played = append(a.Played, engine.AudioTrack{File: file, Repeat: repeat})
}

// Programs hands out a fixed set of saved programs per level and rank.
type Programs struct {
	// Saved maps a level key and object rank to the player's programs.
	Saved  map[string]map[int][]engine.Program
	Loaded int
}

func (p *Programs) LoadPrograms(obj engine.Object, levelKey string, rank int) error {
	holder, ok := obj.(*Object)
	if !ok {
		return nil
	}
	for _, prog := range p.Saved[levelKey][rank] {
		holder.AddProgram(prog)
		p.Loaded++
	}
	return nil
}

// Sim bundles one of each stand-in.
type Sim struct {
	Objects  *ObjectManager
	Terrain  *Terrain
	Renderer *Renderer
	Audio    *Audio
	Programs *Programs
}

// New creates an empty simulated world.
func New() *Sim {
	return &Sim{
		Objects:  NewObjectManager(),
		Terrain:  NewTerrain(),
		Renderer: NewRenderer(),
		Audio:    &Audio{},
		Programs: &Programs{Saved: make(map[string]map[int][]engine.Program)},
	}
}

// Collaborators wires the stand-ins for a builder. Profile and scene reader
// are left to the caller.
func (s *Sim) Collaborators() engine.Collaborators {
	return engine.Collaborators{
		Terrain:  s.Terrain,
		Renderer: s.Renderer,
		Objects:  s.Objects,
		Audio:    s.Audio,
		Programs: s.Programs,
	}
}
