package condition

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Object is the view of a live world object the conditions need.
type Object interface {
	ID() int
	Type() data.ObjectType
	Team() int
	// Position is the world position, the carrier's when transported.
	Position() mgl32.Vec3
	// Energy is the level of the object's power cell, or of the object
	// itself when it is a cell. Objects without energy report -1.
	Energy() float32
	IsTransported() bool
	IsActive() bool
}

// ObjectSource enumerates the live objects of the world.
type ObjectSource interface {
	Objects() []Object
}

// ObjectCondition filters world objects by area, type, energy, equipment and
// team.
type ObjectCondition struct {
	Pos              mgl32.Vec3
	Dist             float32
	Type             data.ObjectType
	PowerMin         float32
	PowerMax         float32
	Tool             data.ToolType
	Drive            data.DriveType
	CountTransported bool
	Team             int
}

// NewObjectCondition returns a filter that matches every object.
func NewObjectCondition(unit float32) ObjectCondition {
	return ObjectCondition{
		Dist:             1000 * unit,
		Type:             data.ObjectNull,
		PowerMin:         -1,
		PowerMax:         100,
		Tool:             data.ToolOther,
		Drive:            data.DriveOther,
		CountTransported: true,
	}
}

// Read fills the filter from a level line. Distances are in level units and
// scaled by unit.
func (c *ObjectCondition) Read(line *parser.Line, unit float32) error {
	*c = NewObjectCondition(unit)

	pos, err := line.Param("pos").AsPointOr(mgl32.Vec3{})
	if err != nil {
		return err
	}
	c.Pos = pos.Mul(unit)

	dist, err := line.Param("dist").AsFloatOr(1000)
	if err != nil {
		return err
	}
	c.Dist = dist * unit

	if c.Type, err = line.Param("type").AsObjectTypeOr(data.ObjectNull); err != nil {
		return err
	}
	if c.PowerMin, err = line.Param("powermin").AsFloatOr(-1); err != nil {
		return err
	}
	if c.PowerMax, err = line.Param("powermax").AsFloatOr(100); err != nil {
		return err
	}
	if c.Tool, err = line.Param("tool").AsToolTypeOr(data.ToolOther); err != nil {
		return err
	}
	if c.Drive, err = line.Param("drive").AsDriveTypeOr(data.DriveOther); err != nil {
		return err
	}
	if c.CountTransported, err = line.Param("countTransported").AsBoolOr(true); err != nil {
		return err
	}
	if c.Team, err = line.Param("team").AsIntOr(0); err != nil {
		return err
	}
	return nil
}

// Matches applies every filter except the area.
func (c *ObjectCondition) Matches(o Object) bool {
	return c.matchesKind(o) && (c.Team == 0 || o.Team() == c.Team)
}

// matchesKind applies the type, equipment, energy and transport filters.
func (c *ObjectCondition) matchesKind(o Object) bool {
	if !o.IsActive() {
		return false
	}
	if !c.CountTransported && o.IsTransported() {
		return false
	}

	t := o.Type()
	if c.Type != data.ObjectNull && t != c.Type {
		return false
	}
	if c.Drive != data.DriveOther && data.DriveFromObject(t) != c.Drive {
		return false
	}
	if c.Tool != data.ToolOther && data.ToolFromObject(t) != c.Tool {
		return false
	}

	energy := o.Energy()
	return energy >= c.PowerMin && energy <= c.PowerMax
}

// MatchesIgnoringTeam is Matches without the team filter.
func (c *ObjectCondition) MatchesIgnoringTeam(o Object) bool {
	return c.matchesKind(o)
}

// InRange reports whether p lies within Dist of Pos on the ground plane.
func (c *ObjectCondition) InRange(p mgl32.Vec3) bool {
	dx := p.X() - c.Pos.X()
	dz := p.Z() - c.Pos.Z()
	return math32.Sqrt(dx*dx+dz*dz) <= c.Dist
}

// CountObjects counts the live objects passing every filter.
func (c *ObjectCondition) CountObjects(src ObjectSource) int {
	n := 0
	for _, o := range src.Objects() {
		if c.Matches(o) && c.InRange(o.Position()) {
			n++
		}
	}
	return n
}
