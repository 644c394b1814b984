package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
)

var (
	ErrTooManyObjects = errors.New("too many objects")
	ErrDuplicateID    = errors.New("object id already in use")
	ErrNoType         = errors.New("object type is required")
)

// DefaultLimit is the object capacity of a new manager.
const DefaultLimit = 5000

// ObjectManager keeps the live objects in creation order.
type ObjectManager struct {
	// Limit is the most objects that may exist at once.
	Limit int

	objects *orderedmap.OrderedMap[int, *Object]
	nextID  int
	// Destroyed records DestroyTeam calls as team → win.
	Destroyed map[int]bool
}

// NewObjectManager creates an empty manager.
func NewObjectManager() *ObjectManager {
	return &ObjectManager{
		Limit:     DefaultLimit,
		objects:   orderedmap.NewOrderedMap[int, *Object](),
		nextID:    1,
		Destroyed: make(map[int]bool),
	}
}

// CreateObject instantiates an object. Vehicles created with power get a
// power cell holding that charge.
func (m *ObjectManager) CreateObject(params engine.CreateParams) (engine.Object, error) {
	if params.Type == data.ObjectNull {
		return nil, ErrNoType
	}

	obj, err := m.add(params.ID, params.Type, params.Team, params.Pos)
	if err != nil {
		return nil, err
	}
	obj.angle = params.Angle
	obj.option = params.Option
	obj.trainer = params.Trainer
	obj.toy = params.Toy
	obj.programs = append(obj.programs, params.Programs...)
	if params.Run >= 0 && params.Run < len(obj.programs) {
		obj.running = params.Run
	}

	switch {
	case params.Type.IsEnergyCell():
		obj.SetEnergy(params.Power)
	case params.Type.IsVehicle() && params.Power > 0:
		cell, err := m.add(-1, data.ObjectPower, params.Team, params.Pos)
		if err != nil {
			m.objects.Delete(obj.id)
			return nil, err
		}
		cell.SetEnergy(params.Power)
		obj.powerCell = cell
		cell.carrier = obj
	}
	return obj, nil
}

func (m *ObjectManager) add(id int, kind data.ObjectType, team int, pos mgl32.Vec3) (*Object, error) {
	if m.objects.Len() >= m.Limit {
		return nil, fmt.Errorf("%w (limit %d)", ErrTooManyObjects, m.Limit)
	}
	if id < 0 {
		id = m.nextID
	}
	if _, ok := m.objects.Get(id); ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if id >= m.nextID {
		m.nextID = id + 1
	}

	obj := NewObject(id, kind, team, pos)
	m.objects.Set(id, obj)
	return obj, nil
}

// AttachPowerCell puts cell into owner's battery slot.
func (m *ObjectManager) AttachPowerCell(owner, cell engine.Object) error {
	o, c, err := m.pair(owner, cell)
	if err != nil {
		return err
	}
	o.powerCell = c
	c.carrier = o
	return nil
}

// AttachCargo makes owner carry cargo.
func (m *ObjectManager) AttachCargo(owner, cargo engine.Object) error {
	o, c, err := m.pair(owner, cargo)
	if err != nil {
		return err
	}
	o.cargo = c
	c.carrier = o
	return nil
}

func (m *ObjectManager) pair(a, b engine.Object) (*Object, *Object, error) {
	oa, ok := m.objects.Get(a.ID())
	if !ok {
		return nil, nil, fmt.Errorf("unknown object %d", a.ID())
	}
	ob, ok := m.objects.Get(b.ID())
	if !ok {
		return nil, nil, fmt.Errorf("unknown object %d", b.ID())
	}
	return oa, ob, nil
}

// Get returns the object with id, or nil.
func (m *ObjectManager) Get(id int) *Object {
	obj, _ := m.objects.Get(id)
	return obj
}

// Len is the number of objects, active or not.
func (m *ObjectManager) Len() int { return m.objects.Len() }

func (m *ObjectManager) all() []*Object {
	out := make([]*Object, 0, m.objects.Len())
	for el := m.objects.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Objects lists the active objects, for conditions.
func (m *ObjectManager) Objects() []condition.Object {
	active := lo.Filter(m.all(), func(o *Object, _ int) bool { return o.active })
	return lo.Map(active, func(o *Object, _ int) condition.Object { return o })
}

// AllObjects lists every object in creation order.
func (m *ObjectManager) AllObjects() []engine.Object {
	return lo.Map(m.all(), func(o *Object, _ int) engine.Object { return o })
}

// FindNearest returns the closest active object of type t, any type when t
// is ObjectNull, or nil.
func (m *ObjectManager) FindNearest(pos mgl32.Vec3, t data.ObjectType) engine.Object {
	var best *Object
	var bestDist float32
	for _, o := range m.all() {
		if !o.active || (t != data.ObjectNull && o.kind != t) {
			continue
		}
		d := o.Position().Sub(pos).Len()
		if best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	if best == nil {
		return nil
	}
	return best
}

// Destroy removes one object and whatever it carries.
func (m *ObjectManager) Destroy(id int) {
	obj, ok := m.objects.Get(id)
	if !ok {
		return
	}
	if obj.powerCell != nil {
		m.objects.Delete(obj.powerCell.id)
	}
	if obj.cargo != nil {
		m.objects.Delete(obj.cargo.id)
	}
	m.objects.Delete(id)
}

// DestroyTeam removes every object of team. A winning team leaves nothing
// behind; a losing one too, only the record differs.
func (m *ObjectManager) DestroyTeam(team int, win bool) {
	for _, o := range m.all() {
		if o.team == team {
			m.objects.Delete(o.id)
		}
	}
	m.Destroyed[team] = win
}

// ActiveTeams lists the non-neutral teams that still have objects.
func (m *ObjectManager) ActiveTeams() []int {
	teams := lo.Uniq(lo.FilterMap(m.all(), func(o *Object, _ int) (int, bool) {
		return o.team, o.active && o.team != 0
	}))
	sort.Ints(teams)
	return teams
}

// Clear removes every object.
func (m *ObjectManager) Clear() {
	m.objects = orderedmap.NewOrderedMap[int, *Object]()
	m.nextID = 1
	m.Destroyed = make(map[int]bool)
}
