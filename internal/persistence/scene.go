// Package persistence saves and restores games: the object snapshot of a
// scene, the program execution state of its objects, save slots and the
// player profile.
package persistence

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

const (
	// SceneFile is the object snapshot inside a save slot.
	SceneFile = "data.sav"
	// StackFile holds the program execution states inside a save slot.
	StackFile = "cbot.run"

	// VersionMajor and VersionMinor are written on the Version line.
	VersionMajor = 1
	VersionMinor = 2
	maxScripts   = 10
)

// Saveable is an object that can describe itself on a save line.
type Saveable interface {
	engine.Object
	Angle() float32
	Option() int
	Trainer() bool
	Programs() []engine.Program
	Running() int
	PowerCell() engine.Object
	Cargo() engine.Object
	// Write adds the attributes only the object knows about.
	Write(line *parser.Line)
}

// Attacher links restored objects to their carrier.
type Attacher interface {
	AttachPowerCell(owner, cell engine.Object) error
	AttachCargo(owner, cargo engine.Object) error
}

// Snapshot is a parsed save file.
type Snapshot struct {
	Title        string
	Major, Minor int
	Created      time.Time
	Level        engine.LevelRef
	GameTime     float32
	ResearchDone data.ResearchFlag
	// Objects are the CreateObject, CreatePower and CreateFret lines in file
	// order.
	Objects []*parser.Line
}

// WriteScene renders the world and its objects in save syntax.
func WriteScene(out io.Writer, w *engine.World, level engine.LevelRef, objects []engine.Object, now time.Time) error {
	p := parser.New("")

	header := parser.NewLine("Title")
	header.SetParam("text", parser.NewStringParam(w.Title))
	p.AddLine(header)

	version := parser.NewLine("Version")
	version.SetParam("maj", parser.NewIntParam(VersionMajor))
	version.SetParam("min", parser.NewIntParam(VersionMinor))
	p.AddLine(version)

	created := parser.NewLine("Created")
	created.SetParam("date", parser.NewIntParam(int(now.Unix())))
	p.AddLine(created)

	mission := parser.NewLine("Mission")
	mission.SetParam("base", parser.NewStringParam(level.Category.Dir()))
	mission.SetParam("chap", parser.NewIntParam(level.Chapter))
	mission.SetParam("rank", parser.NewIntParam(level.Rank))
	mission.SetParam("gametime", parser.NewFloatParam(w.GameTime))
	p.AddLine(mission)

	research := parser.NewLine("DoneResearch")
	research.SetParam("bits", parser.NewIntParam(int(w.ResearchDone[0])))
	p.AddLine(research)

	// Carried objects are written just before their carrier so a reader can
	// attach them as it goes.
	carried := make(map[int]bool)
	for _, obj := range objects {
		s, ok := obj.(Saveable)
		if !ok {
			continue
		}
		if cell := s.PowerCell(); cell != nil {
			carried[cell.ID()] = true
		}
		if cargo := s.Cargo(); cargo != nil {
			carried[cargo.ID()] = true
		}
	}

	for _, obj := range objects {
		s, ok := obj.(Saveable)
		if !ok || carried[obj.ID()] || obj.Type() == data.ObjectController {
			continue
		}
		if cell, ok := s.PowerCell().(Saveable); ok {
			p.AddLine(objectLine("CreatePower", cell, w, false))
		}
		if cargo, ok := s.Cargo().(Saveable); ok {
			p.AddLine(objectLine("CreateFret", cargo, w, false))
		}
		p.AddLine(objectLine("CreateObject", s, w, obj == w.Selected))
	}

	_, err := p.WriteTo(out)
	return err
}

func objectLine(command string, obj Saveable, w *engine.World, selected bool) *parser.Line {
	line := parser.NewLine(command)
	line.SetParam("type", parser.NewObjectTypeParam(obj.Type()))
	line.SetParam("id", parser.NewIntParam(obj.ID()))
	line.SetParam("pos", parser.NewPointParam(obj.Position().Mul(1/w.Unit)))
	line.SetParam("angle", parser.NewFloatParam(mgl32.RadToDeg(obj.Angle())))
	line.SetParam("zoom", parser.NewFloatParam(1))

	if obj.Option() != 0 {
		line.SetParam("option", parser.NewIntParam(obj.Option()))
	}
	if obj.Trainer() {
		line.SetParam("trainer", parser.NewBoolParam(true))
	}
	if obj.Team() != 0 {
		line.SetParam("team", parser.NewIntParam(obj.Team()))
	}
	if obj.Type().IsEnergyCell() {
		line.SetParam("power", parser.NewFloatParam(obj.Energy()))
	}
	if selected {
		line.SetParam("select", parser.NewBoolParam(true))
	}

	for i, prog := range obj.Programs() {
		if i >= maxScripts {
			break
		}
		line.SetParam(fmt.Sprintf("script%d", i+1), parser.NewStringParam(prog.Path))
		if prog.ReadOnly {
			line.SetParam(fmt.Sprintf("scriptReadOnly%d", i+1), parser.NewBoolParam(true))
		}
	}
	if run := obj.Running(); run >= 0 {
		line.SetParam("run", parser.NewIntParam(run+1))
	}
	if idx := obj.ProgramStorageIndex(); idx >= 0 {
		line.SetParam("programStorageIndex", parser.NewIntParam(idx))
	}

	obj.Write(line)
	return line
}

// SaveScene writes the snapshot file at path.
func SaveScene(path string, w *engine.World, level engine.LevelRef, objects []engine.Object) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create save file %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteScene(f, w, level, objects, time.Now()); err != nil {
		return fmt.Errorf("failed to write save file %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot parses a save file.
func ReadSnapshot(path string) (*Snapshot, error) {
	p := parser.New("")
	if err := p.Load(path); err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	for _, line := range p.Lines() {
		var err error
		switch line.Command() {
		case "Title":
			snap.Title, err = line.Param("text").AsStringOr("")
		case "Version":
			if snap.Major, err = line.Param("maj").AsIntOr(0); err == nil {
				snap.Minor, err = line.Param("min").AsIntOr(0)
			}
		case "Created":
			var date int
			date, err = line.Param("date").AsIntOr(0)
			snap.Created = time.Unix(int64(date), 0)
		case "Mission":
			err = readMission(line, snap)
		case "DoneResearch":
			var bits int
			bits, err = line.Param("bits").AsIntOr(0)
			snap.ResearchDone = data.ResearchFlag(bits)
		case "CreateObject", "CreatePower", "CreateFret":
			snap.Objects = append(snap.Objects, line)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read save file %s: %w", path, err)
		}
	}

	if snap.Major > VersionMajor {
		return nil, fmt.Errorf("save file %s has version %d.%d, newer than %d.%d",
			path, snap.Major, snap.Minor, VersionMajor, VersionMinor)
	}
	return snap, nil
}

func readMission(line *parser.Line, snap *Snapshot) error {
	base, err := line.Param("base").AsString()
	if err != nil {
		return err
	}
	category, err := data.ParseCategory(base)
	if err != nil {
		return err
	}
	snap.Level.Category = category
	if snap.Level.Chapter, err = line.Param("chap").AsInt(); err != nil {
		return err
	}
	if snap.Level.Rank, err = line.Param("rank").AsInt(); err != nil {
		return err
	}
	snap.GameTime, err = line.Param("gametime").AsFloatOr(0)
	return err
}

// Restore recreates the snapshot's objects in the world being built and
// returns the one that was selected.
func (snap *Snapshot) Restore(ctx *engine.SceneBuildContext) (engine.Object, error) {
	w := ctx.World
	w.GameTime = snap.GameTime
	w.MarkResearchDone(snap.ResearchDone, 0)

	attacher, _ := ctx.Collab.Objects.(Attacher)

	var selected, cell, cargo engine.Object
	for _, line := range snap.Objects {
		obj, err := restoreObject(ctx, line)
		if err != nil {
			return nil, err
		}

		switch line.Command() {
		case "CreatePower":
			cell = obj
			continue
		case "CreateFret":
			cargo = obj
			continue
		}

		if attacher != nil && cell != nil {
			if err := attacher.AttachPowerCell(obj, cell); err != nil {
				return nil, err
			}
		}
		if attacher != nil && cargo != nil {
			if err := attacher.AttachCargo(obj, cargo); err != nil {
				return nil, err
			}
		}
		cell, cargo = nil, nil

		if sel, _ := line.Param("select").AsBoolOr(false); sel {
			selected = obj
		}
	}
	return selected, nil
}

func restoreObject(ctx *engine.SceneBuildContext, line *parser.Line) (engine.Object, error) {
	params, err := readObjectLine(line, ctx.Unit)
	if err != nil {
		return nil, err
	}

	obj, err := ctx.Collab.Objects.CreateObject(params)
	if err != nil {
		return nil, &engine.ObjectCreationError{Type: params.Type, Err: err}
	}
	if err := obj.Read(line, ctx.Unit); err != nil {
		return nil, err
	}
	if idx, _ := line.Param("programStorageIndex").AsIntOr(-1); idx >= 0 {
		obj.SetProgramStorageIndex(idx)
	}
	ctx.LineLog(line).WithField("id", obj.ID()).Debug("Restored object")
	return obj, nil
}

func readObjectLine(line *parser.Line, unit float32) (engine.CreateParams, error) {
	var params engine.CreateParams
	var err error

	// 1. Identity and placement
	if params.Type, err = line.Param("type").AsObjectType(); err != nil {
		return params, err
	}
	if params.ID, err = line.Param("id").AsIntOr(-1); err != nil {
		return params, err
	}
	pos, err := line.Param("pos").AsPointOr(mgl32.Vec3{})
	if err != nil {
		return params, err
	}
	params.Pos = pos.Mul(unit)
	angle, err := line.Param("angle").AsFloatOr(0)
	if err != nil {
		return params, err
	}
	params.Angle = mgl32.DegToRad(angle)

	// 2. State
	if params.Option, err = line.Param("option").AsIntOr(0); err != nil {
		return params, err
	}
	if params.Trainer, err = line.Param("trainer").AsBoolOr(false); err != nil {
		return params, err
	}
	if params.Team, err = line.Param("team").AsIntOr(0); err != nil {
		return params, err
	}
	if params.Type.IsEnergyCell() {
		if params.Power, err = line.Param("power").AsFloatOr(1); err != nil {
			return params, err
		}
	}

	// 3. Programs
	for i := 1; i <= maxScripts; i++ {
		path, err := line.Param(fmt.Sprintf("script%d", i)).AsStringOr("")
		if err != nil {
			return params, err
		}
		if path == "" {
			continue
		}
		readOnly, err := line.Param(fmt.Sprintf("scriptReadOnly%d", i)).AsBoolOr(false)
		if err != nil {
			return params, err
		}
		params.Programs = append(params.Programs, engine.Program{Path: path, ReadOnly: readOnly, Runnable: true})
	}
	run, err := line.Param("run").AsIntOr(0)
	if err != nil {
		return params, err
	}
	params.Run = run - 1
	return params, nil
}

// SceneLoader restores saved games during a scene build.
type SceneLoader struct {
	// RuntimeVersion is the script runtime version execution states must
	// match to be resumed.
	RuntimeVersion uint32
}

// ReadScene restores the snapshot at path, then the program states saved
// next to it.
func (l *SceneLoader) ReadScene(ctx *engine.SceneBuildContext, path string) (engine.Object, error) {
	snap, err := ReadSnapshot(path)
	if err != nil {
		return nil, err
	}
	selected, err := snap.Restore(ctx)
	if err != nil {
		return nil, err
	}

	stackPath := filepath.Join(filepath.Dir(path), StackFile)
	f, err := os.Open(stackPath)
	if errors.Is(err, os.ErrNotExist) {
		return selected, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", stackPath, err)
	}
	defer f.Close()

	log := ctx.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	restored, err := ReadStacks(f, l.RuntimeVersion, ctx.Collab.Objects.AllObjects(), log)
	if err != nil {
		log.WithError(err).Warn("Program states not restored")
		return selected, nil
	}
	log.WithField("programs", restored).Debug("Program states restored")
	return selected, nil
}
