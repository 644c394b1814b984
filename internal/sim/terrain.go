package sim

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/engine"
)

// FlyingLimit is a zone with a lower flying ceiling.
type FlyingLimit struct {
	Center    mgl32.Vec3
	ExtRadius float32
	IntRadius float32
	MaxHeight float32
}

// Terrain is a flat terrain at Height that records how it was built.
type Terrain struct {
	Height float32

	Generation *engine.TerrainGeneration
	Wind       mgl32.Vec3
	Relief     string
	Resources  string
	Textures   []int
	Materials  []engine.Material
	Levels     []engine.MaterialLevel
	Created    bool
	MaxFlying  float32
	Limits     []FlyingLimit

	// Calls lists the construction steps in the order they happened.
	Calls []string
}

func NewTerrain() *Terrain {
	return &Terrain{MaxFlying: 280 * engine.DefaultUnit}
}

func (t *Terrain) record(call string) { t.Calls = append(t.Calls, call) }

func (t *Terrain) Generate(gen engine.TerrainGeneration) error {
	if gen.Mosaic <= 0 || gen.Brick <= 0 {
		return fmt.Errorf("invalid terrain mosaic %dx%d", gen.Mosaic, gen.Brick)
	}
	t.record("Generate")
	t.Generation = &gen
	return nil
}

func (t *Terrain) SetWind(speed mgl32.Vec3) {
	t.record("SetWind")
	t.Wind = speed
}

func (t *Terrain) LoadRelief(image string, factor float32, border bool) error {
	t.record("LoadRelief")
	t.Relief = image
	return nil
}

func (t *Terrain) RandomizeRelief() { t.record("RandomizeRelief") }

func (t *Terrain) LoadResources(image string) error {
	t.record("LoadResources")
	t.Resources = image
	return nil
}

func (t *Terrain) InitTextures(image string, table []int, dx, dy int) error {
	t.record("InitTextures")
	t.Textures = table
	return nil
}

func (t *Terrain) InitMaterials(id int) { t.record("InitMaterials") }

func (t *Terrain) AddMaterial(m engine.Material) error {
	t.record("AddMaterial")
	t.Materials = append(t.Materials, m)
	return nil
}

func (t *Terrain) GenerateMaterials(level engine.MaterialLevel) error {
	t.record("GenerateMaterials")
	t.Levels = append(t.Levels, level)
	return nil
}

func (t *Terrain) CreateObjects() error {
	t.record("CreateObjects")
	t.Created = true
	return nil
}

// AdjustToFloor puts pos on the ground.
func (t *Terrain) AdjustToFloor(pos mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{pos.X(), t.Height, pos.Z()}
}

func (t *Terrain) FloorLevel(pos mgl32.Vec3) float32 { return t.Height }

// FlatZoneRadius is max everywhere since the terrain is flat.
func (t *Terrain) FlatZoneRadius(center mgl32.Vec3, max float32) float32 { return max }

func (t *Terrain) SetFlyingMaxHeight(height float32) { t.MaxFlying = height }

func (t *Terrain) AddFlyingLimit(center mgl32.Vec3, extRadius, intRadius, maxHeight float32) {
	t.Limits = append(t.Limits, FlyingLimit{center, extRadius, intRadius, maxHeight})
}

// FlyingHeight is the ceiling at pos, lowered near flying limits.
func (t *Terrain) FlyingHeight(pos mgl32.Vec3) float32 {
	ceiling := t.MaxFlying
	for _, l := range t.Limits {
		d := mgl32.Vec2{pos.X() - l.Center.X(), pos.Z() - l.Center.Z()}.Len()
		if d >= l.ExtRadius {
			continue
		}
		h := l.MaxHeight
		if d > l.IntRadius {
			h += (ceiling - l.MaxHeight) * (d - l.IntRadius) / (l.ExtRadius - l.IntRadius)
		}
		ceiling = math32.Min(ceiling, h)
	}
	return ceiling
}
