// Package sim provides in-memory stand-ins for the subsystems a scene build
// drives: objects, terrain, renderer and audio. They keep what they are told
// so tools and tests can inspect a built scene.
package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Object is a world object without physics.
type Object struct {
	id          int
	kind        data.ObjectType
	team        int
	pos         mgl32.Vec3
	angle       float32
	energy      float32
	option      int
	trainer     bool
	toy         bool
	active      bool
	transported bool
	storage     int

	programs []engine.Program
	running  int
	stack    []byte

	powerCell *Object
	cargo     *Object
	carrier   *Object

	// Lock and Shield are read from the object's own params.
	Lock   bool
	Shield float32
}

// NewObject creates a standalone active object.
func NewObject(id int, kind data.ObjectType, team int, pos mgl32.Vec3) *Object {
	return &Object{
		id:      id,
		kind:    kind,
		team:    team,
		pos:     pos,
		energy:  -1,
		active:  true,
		storage: -1,
		running: -1,
		Shield:  1,
	}
}

func (o *Object) ID() int { return o.id }
func (o *Object) Type() data.ObjectType { return o.kind }
func (o *Object) Team() int { return o.team }
func (o *Object) Angle() float32 { return o.angle }
func (o *Object) Option() int { return o.option }
func (o *Object) Trainer() bool { return o.trainer }
func (o *Object) Toy() bool { return o.toy }
func (o *Object) IsActive() bool { return o.active }
func (o *Object) IsTransported() bool { return o.carrier != nil || o.transported }

// Position is the carrier's position while the object is transported.
func (o *Object) Position() mgl32.Vec3 {
	if o.carrier != nil {
		return o.carrier.Position()
	}
	return o.pos
}

func (o *Object) SetPosition(pos mgl32.Vec3) { o.pos = pos }

// Energy is the charge of the object itself when it is a cell, else of its
// power cell, else -1.
func (o *Object) Energy() float32 {
	if o.kind.IsEnergyCell() {
		return o.energy
	}
	if o.powerCell != nil {
		return o.powerCell.energy
	}
	return -1
}

// SetEnergy sets the charge, clamped to [0, 1].
func (o *Object) SetEnergy(v float32) {
	o.energy = math32.Max(0, math32.Min(1, v))
}

// Selectable reports whether the player can take control of the object.
func (o *Object) Selectable() bool {
	return o.kind.IsVehicle() || o.kind == data.ObjectHuman || o.kind == data.ObjectBase
}

func (o *Object) ProgramStorageIndex() int { return o.storage }

func (o *Object) SetProgramStorageIndex(index int) { o.storage = index }

// Programs returns the scripts attached on creation or loaded afterwards.
func (o *Object) Programs() []engine.Program { return o.programs }

// AddProgram attaches a script and returns its index.
func (o *Object) AddProgram(p engine.Program) int {
	o.programs = append(o.programs, p)
	return len(o.programs) - 1
}

// Running is the index of the running program, -1 for none.
func (o *Object) Running() int { return o.running }

func (o *Object) PowerCell() engine.Object {
	if o.powerCell == nil {
		return nil
	}
	return o.powerCell
}

func (o *Object) Cargo() engine.Object {
	if o.cargo == nil {
		return nil
	}
	return o.cargo
}

// Read picks up the params only this object understands.
func (o *Object) Read(line *parser.Line, unit float32) error {
	var err error
	if o.Lock, err = line.Param("lock").AsBoolOr(false); err != nil {
		return err
	}
	if o.Shield, err = line.Param("shield").AsFloatOr(1); err != nil {
		return err
	}
	return nil
}

// Write adds the object's own params to its save line.
func (o *Object) Write(line *parser.Line) {
	if o.Lock {
		line.SetParam("lock", parser.NewBoolParam(true))
	}
	if o.Shield != 1 {
		line.SetParam("shield", parser.NewFloatParam(o.Shield))
	}
}

// StackState is the serialized execution state of the running program.
func (o *Object) StackState() []byte { return o.stack }

// RestoreStack resumes a program from a saved execution state.
func (o *Object) RestoreStack(state []byte) error {
	o.stack = append([]byte(nil), state...)
	return nil
}

// SetStackState records an execution state, standing in for the script
// runtime.
func (o *Object) SetStackState(state []byte) { o.stack = state }
