package command

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

var white = data.Color{R: 1, G: 1, B: 1, A: 1}

// lineReader reads the params of one line and keeps the first error, so a
// handler can read everything and check once.
type lineReader struct {
	line *parser.Line
	err  error
}

func newReader(line *parser.Line) *lineReader {
	return &lineReader{line: line}
}

// Err is the first error met while reading.
func (r *lineReader) Err() error { return r.err }

func (r *lineReader) has(name string) bool { return r.line.HasParam(name) }

func (r *lineReader) param(name string) *parser.Param { return r.line.Param(name) }

func required[T any](r *lineReader, get func() (T, error)) T {
	var zero T
	if r.err != nil {
		return zero
	}
	v, err := get()
	if err != nil {
		r.err = err
		return zero
	}
	return v
}

func optional[T any](r *lineReader, get func(T) (T, error), def T) T {
	return required(r, func() (T, error) { return get(def) })
}

func (r *lineReader) int(name string) int { return required(r, r.param(name).AsInt) }

func (r *lineReader) intOr(name string, def int) int {
	return optional(r, r.param(name).AsIntOr, def)
}

func (r *lineReader) float(name string) float32 { return required(r, r.param(name).AsFloat) }

func (r *lineReader) floatOr(name string, def float32) float32 {
	return optional(r, r.param(name).AsFloatOr, def)
}

func (r *lineReader) bool(name string) bool { return required(r, r.param(name).AsBool) }

func (r *lineReader) boolOr(name string, def bool) bool {
	return optional(r, r.param(name).AsBoolOr, def)
}

func (r *lineReader) string(name string) string { return required(r, r.param(name).AsString) }

func (r *lineReader) stringOr(name string, def string) string {
	return optional(r, r.param(name).AsStringOr, def)
}

func (r *lineReader) path(name, dir string) string {
	return required(r, func() (string, error) { return r.param(name).AsPath(dir) })
}

func (r *lineReader) pathOr(name, dir, def string) string {
	return required(r, func() (string, error) { return r.param(name).AsPathOr(dir, def) })
}

func (r *lineReader) color(name string) data.Color { return required(r, r.param(name).AsColor) }

func (r *lineReader) colorOr(name string, def data.Color) data.Color {
	return optional(r, r.param(name).AsColorOr, def)
}

func (r *lineReader) point(name string) mgl32.Vec3 { return required(r, r.param(name).AsPoint) }

func (r *lineReader) pointOr(name string, def mgl32.Vec3) mgl32.Vec3 {
	return optional(r, r.param(name).AsPointOr, def)
}

func (r *lineReader) angleOr(name string, defDegrees float32) float32 {
	return optional(r, r.param(name).AsAngleOr, defDegrees)
}

func (r *lineReader) array(name string) []*parser.Param {
	return required(r, r.param(name).AsArray)
}

func (r *lineReader) objectType(name string) data.ObjectType {
	return required(r, r.param(name).AsObjectType)
}

func (r *lineReader) objectTypeOr(name string, def data.ObjectType) data.ObjectType {
	return optional(r, r.param(name).AsObjectTypeOr, def)
}

func (r *lineReader) waterTypeOr(name string, def data.WaterType) data.WaterType {
	return optional(r, r.param(name).AsWaterTypeOr, def)
}

func (r *lineReader) terrainTypeOr(name string, def data.TerrainType) data.TerrainType {
	return optional(r, r.param(name).AsTerrainTypeOr, def)
}

func (r *lineReader) buildFlag(name string) data.BuildFlag {
	return required(r, r.param(name).AsBuildFlag)
}

func (r *lineReader) researchFlag(name string) data.ResearchFlag {
	return required(r, r.param(name).AsResearchFlag)
}

func (r *lineReader) sortTypeOr(name string, def data.SortType) data.SortType {
	return optional(r, r.param(name).AsSortTypeOr, def)
}

func (r *lineReader) missionTypeOr(name string, def data.MissionType) data.MissionType {
	return optional(r, r.param(name).AsMissionTypeOr, def)
}

func (r *lineReader) planetTypeOr(name string, def data.PlanetType) data.PlanetType {
	return optional(r, r.param(name).AsPlanetTypeOr, def)
}

// ints reads an optional array of ints into a table of fixed capacity,
// zero filled.
func (r *lineReader) ints(name, table string, capacity int) ([]int, error) {
	out := make([]int, capacity)
	if !r.has(name) {
		return out, r.err
	}

	items := r.array(name)
	if r.err != nil {
		return nil, r.err
	}
	if len(items) > capacity {
		return nil, overflow(table, capacity, len(items))
	}
	for i, item := range items {
		v, err := item.AsInt()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
