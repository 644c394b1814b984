package command

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

const textureDir = "textures"

// defaultGray is the neutral color of unset ambient, fog and map colors.
var defaultGray = data.Gray(0.533)

// Rank 0 is above the water surface, rank 1 below it.
const (
	rankAir   = 0
	rankWater = 1
)

func ambientColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	air := r.colorOr("air", defaultGray)
	water := r.colorOr("water", defaultGray)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetAmbientColor(air, rankAir)
	ctx.Collab.Renderer.SetAmbientColor(water, rankWater)
	return nil
}

func fogColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	air := r.colorOr("air", defaultGray)
	water := r.colorOr("water", defaultGray)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetFogColor(air, rankAir)
	ctx.Collab.Renderer.SetFogColor(water, rankWater)
	return nil
}

func vehicleColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	team := r.intOr("team", 0)
	color := r.colorOr("color", defaultGray)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.VehicleColor[team] = color
	ctx.World.ColorsDirty = true
	return nil
}

func insectColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	color := r.colorOr("color", defaultGray)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.AlienColor = color
	ctx.World.ColorsDirty = true
	return nil
}

func greeneryColor(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	color := r.colorOr("color", defaultGray)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.GreenColor = color
	ctx.World.ColorsDirty = true
	return nil
}

func deepView(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	air := r.floatOr("air", 500)
	water := r.floatOr("water", 100)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetDeepView(air*ctx.Unit, rankAir)
	ctx.Collab.Renderer.SetDeepView(water*ctx.Unit, rankWater)
	return nil
}

func fogStart(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	air := r.floatOr("air", 0.5)
	water := r.floatOr("water", 0.5)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetFogStart(air, rankAir)
	ctx.Collab.Renderer.SetFogStart(water, rankWater)
	return nil
}

func secondTexture(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)

	var name string
	if r.has("rank") {
		name = fmt.Sprintf("dirty%02d.png", r.int("rank"))
	} else {
		name = "../" + r.path("name", textureDir)
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetSecondTexture(name)
	return nil
}

// background is only recorded here; the builder commits it once every line
// has run.
func background(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	bg := engine.Background{
		Image:     r.pathOr("image", textureDir, ""),
		Up:        r.colorOr("up", data.Color{}),
		Down:      r.colorOr("down", data.Color{}),
		CloudUp:   r.colorOr("cloudUp", data.Color{}),
		CloudDown: r.colorOr("cloudDown", data.Color{}),
		Full:      r.boolOr("full", false),
	}
	if r.Err() != nil {
		return r.Err()
	}
	ctx.World.Background = bg
	return nil
}

func planet(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	pos := r.point("pos")
	uv1 := r.point("uv1")
	uv2 := r.point("uv2")
	p := engine.Planet{
		Mode:  r.planetTypeOr("mode", data.PlanetSky),
		Pos:   mgl32.Vec2{pos.X(), pos.Z()},
		Dim:   r.floatOr("dim", 0.2),
		Speed: r.floatOr("speed", 0),
		Dir:   r.floatOr("dir", 0),
		Image: r.path("image", textureDir),
		UV1:   mgl32.Vec2{uv1.X(), uv1.Z()},
		UV2:   mgl32.Vec2{uv2.X(), uv2.Z()},
	}
	if r.Err() != nil {
		return r.Err()
	}
	p.Transparent = strings.Contains(p.Image, "planet")
	ctx.Collab.Renderer.CreatePlanet(p)
	return nil
}

func foregroundName(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	image := r.path("image", textureDir)
	if r.Err() != nil {
		return r.Err()
	}
	ctx.Collab.Renderer.SetForegroundName(image)
	return nil
}
