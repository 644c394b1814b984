package command

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

var defaultLightColor = data.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}

func createFog(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	kind := r.int("type")
	pos := r.point("pos").Mul(ctx.Unit)
	height := r.floatOr("height", 1) * ctx.Unit
	dim := r.floatOr("dim", 50) * ctx.Unit
	delay := r.floatOr("delay", 2)
	if r.Err() != nil {
		return r.Err()
	}

	pos = ctx.Collab.Terrain.AdjustToFloor(pos)
	pos[1] += height
	ctx.Collab.Renderer.CreateFog(engine.Fog{Type: kind, Pos: pos, Dim: dim, Delay: delay})
	return nil
}

// lightClasses sets which engine objects a light of class t reaches.
func lightClasses(l *engine.Light, t data.TerrainType) {
	switch t {
	case data.TerrainTerrain:
		l.Highest = true
		l.Include = data.TerrainTerrain
	case data.TerrainQuartz, data.TerrainMetal:
		l.Include = t
	case data.TerrainFix:
		l.Exclude = data.TerrainTerrain
	}
}

func createLight(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	l := engine.Light{
		Dir:   r.point("dir"),
		Color: r.colorOr("color", defaultLightColor),
	}
	t := r.terrainTypeOr("type", data.TerrainNull)
	if r.Err() != nil {
		return r.Err()
	}
	lightClasses(&l, t)
	ctx.Collab.Renderer.CreateLight(l)
	return nil
}

func createSpot(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	l := engine.Light{
		Spot:  true,
		Pos:   r.point("pos").Mul(ctx.Unit),
		Color: r.colorOr("color", defaultLightColor),
	}
	t := r.terrainTypeOr("type", data.TerrainNull)
	if r.Err() != nil {
		return r.Err()
	}
	lightClasses(&l, t)
	ctx.Collab.Renderer.CreateLight(l)
	return nil
}

func groundSpot(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	s := engine.GroundSpot{
		Pos:    r.point("pos").Mul(ctx.Unit),
		Radius: r.floatOr("radius", 10) * ctx.Unit,
		Color:  r.colorOr("color", defaultGray),
		Smooth: r.floatOr("smooth", 1),
		Min:    r.floatOr("min", 0) * ctx.Unit,
		Max:    r.floatOr("max", 0) * ctx.Unit,
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.CreateGroundSpot(s)
	return nil
}

func waterColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	c := r.color("color")
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetWaterAddColor(c)
	return nil
}

func mapColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	m := engine.MapSettings{
		Floor:   r.colorOr("floor", defaultGray),
		Water:   r.colorOr("water", defaultGray),
		Show:    r.boolOr("show", true),
		ToyIcon: r.boolOr("toyIcon", false),
		Image:   r.boolOr("image", false),
	}
	if m.Image {
		m.Filename = r.path("filename", textureDir)
		m.Offset = r.pointOr("offset", mgl32.Vec3{})
		m.Zoom = r.floatOr("zoom", 1)
		m.Angle = r.angleOr("angle", 0)
		m.Mode = r.intOr("mode", 0)
		m.Debug = r.boolOr("debug", false)
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetMap(m)
	return nil
}

func mapZoom(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	factor := r.floatOr("factor", 2)
	enable := r.boolOr("enable", true)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.ZoomMap(factor, enable)
	return nil
}

func maxFlyingHeight(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	height := r.floatOr("max", 280) * ctx.Unit
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Terrain.SetFlyingMaxHeight(height)
	return nil
}

func addFlyingHeight(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	center := r.pointOr("center", mgl32.Vec3{}).Mul(ctx.Unit)
	ext := r.floatOr("extRadius", 20) * ctx.Unit
	inner := r.floatOr("intRadius", 10) * ctx.Unit
	height := r.floatOr("maxHeight", 200)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Terrain.AddFlyingLimit(center, ext, inner, height)
	return nil
}

func camera(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	c := engine.CameraSetup{
		Eye:          r.pointOr("eye", mgl32.Vec3{}).Mul(ctx.Unit),
		LookAt:       r.pointOr("lookat", mgl32.Vec3{}).Mul(ctx.Unit),
		Delay:        r.floatOr("delay", 0),
		FadeIn:       r.boolOr("fadeIn", false),
		FixDirection: r.floatOr("fixDirection", 0.25) * math32.Pi,
	}
	if r.Err() != nil {
		return r.Err()
	}
	if ctx.Mode == engine.ModeReset {
		c.Delay = 0
	}
	ctx.Collab.Renderer.InitCamera(c)
	return nil
}

const maxViewpoints = 10

func view(ctx *engine.SceneBuildContext, line *parser.Line) error {
	if len(ctx.World.Viewpoints) >= maxViewpoints {
		ctx.LineLog(line).Warnf("at most %d views are supported, ignoring this one", maxViewpoints)
		return nil
	}

	r := newReader(line)
	v := engine.Viewpoint{
		Eye:    r.pointOr("eye", mgl32.Vec3{}).Mul(ctx.Unit),
		LookAt: r.pointOr("lookat", mgl32.Vec3{}).Mul(ctx.Unit),
		Button: r.intOr("button", 13),
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.Viewpoints = append(ctx.World.Viewpoints, v)
	return nil
}
