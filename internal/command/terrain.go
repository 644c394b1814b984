package command

import (
	"path"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Capacities of the terrain lookup tables.
const (
	textureTableSize = 100
	levelTableSize   = 50
)

func terrainGenerate(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	gen := engine.TerrainGeneration{
		Mosaic: r.intOr("mosaic", 5),
		Brick:  r.intOr("brick", 3),
		Size:   r.floatOr("size", 20),
		Vision: r.floatOr("vision", 500) * ctx.Unit,
		Depth:  r.intOr("depth", 2),
		Hard:   r.floatOr("hard", 0.5),
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.SetProgress(engine.ProgressTerrain, "")
	return ctx.Collab.Terrain.Generate(gen)
}

func terrainWind(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	speed := r.point("speed")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Terrain.SetWind(speed)
	return nil
}

func terrainRelief(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	image := r.path("image", textureDir)
	factor := r.floatOr("factor", 1)
	border := r.boolOr("border", true)
	if r.Err() != nil {
		return r.Err()
	}
	return ctx.Collab.Terrain.LoadRelief(image, factor, border)
}

func terrainRandomRelief(ctx *engine.SceneBuildContext, line *parser.Line) error {
	ctx.Collab.Terrain.RandomizeRelief()
	return nil
}

func terrainResource(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	image := r.path("image", textureDir)
	if r.Err() != nil {
		return r.Err()
	}
	return ctx.Collab.Terrain.LoadResources(image)
}

func terrainWater(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	w := engine.Water{
		Air:        r.waterTypeOr("air", data.WaterTT),
		Water:      r.waterTypeOr("water", data.WaterTT),
		Image:      r.pathOr("image", textureDir, ""),
		Diffuse:    r.colorOr("diffuse", white),
		Ambient:    r.colorOr("ambient", white),
		Level:      r.floatOr("level", 100) * ctx.Unit,
		Glint:      r.floatOr("glint", 1),
		Eddy:       r.pointOr("eddy", mgl32.Vec3{}),
		Brightness: r.floatOr("brightness", 0),
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.CreateWater(w)
	return nil
}

func terrainLava(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	lava := r.boolOr("mode", false)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetLava(lava)
	return nil
}

func terrainCloud(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	c := engine.Cloud{
		Image:   r.pathOr("image", textureDir, ""),
		Diffuse: r.colorOr("diffuse", white),
		Ambient: r.colorOr("ambient", white),
		Level:   r.floatOr("level", 500) * ctx.Unit,
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.CreateCloud(c)
	return nil
}

func terrainBlitz(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	l := engine.Lightning{
		Sleep:    r.floatOr("sleep", 0),
		Delay:    r.floatOr("delay", 3),
		Magnetic: r.floatOr("magnetic", 50) * ctx.Unit,
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.CreateLightning(l)
	return nil
}

// terrainImage resolves a terrain texture relative to the terrain folder,
// adding .png to names given without an extension.
func terrainImage(r *lineReader) string {
	name := r.path("image", textureDir)
	if r.Err() != nil {
		return ""
	}
	if path.Ext(name) == "" {
		name += ".png"
	}
	return "../" + name
}

func terrainInitTextures(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	image := terrainImage(r)
	dx := r.intOr("dx", 1)
	dy := r.intOr("dy", 1)
	if r.Err() != nil {
		return r.Err()
	}

	table, err := r.ints("table", "texture table", textureTableSize)
	if err != nil {
		return err
	}
	return ctx.Collab.Terrain.InitTextures(image, table, dx, dy)
}

func terrainInit(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	id := r.intOr("id", 1)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Terrain.InitMaterials(id)
	return nil
}

func terrainMaterial(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	m := engine.Material{
		ID:    r.intOr("id", 0),
		Image: terrainImage(r),
		U:     r.floatOr("u", 0),
		V:     r.floatOr("v", 0),
		Up:    r.intOr("up", 1),
		Right: r.intOr("right", 1),
		Down:  r.intOr("down", 1),
		Left:  r.intOr("left", 1),
		Hard:  r.floatOr("hard", 0.5),
	}
	if r.Err() != nil {
		return r.Err()
	}
	return ctx.Collab.Terrain.AddMaterial(m)
}

func terrainLevel(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	ids, err := r.ints("id", "material level table", levelTableSize)
	if err != nil {
		return err
	}

	level := engine.MaterialLevel{
		IDs:    ids,
		Min:    r.floatOr("min", 0) * ctx.Unit,
		Max:    r.floatOr("max", 100) * ctx.Unit,
		Slope:  r.floatOr("slope", 5),
		Freq:   r.floatOr("freq", 100),
		Center: r.pointOr("center", mgl32.Vec3{}).Mul(ctx.Unit),
		Radius: r.floatOr("radius", 0) * ctx.Unit,
	}
	if r.Err() != nil {
		return r.Err()
	}
	return ctx.Collab.Terrain.GenerateMaterials(level)
}

func terrainCreate(ctx *engine.SceneBuildContext, line *parser.Line) error {
	return ctx.Collab.Terrain.CreateObjects()
}
