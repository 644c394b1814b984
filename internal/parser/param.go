package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/data"
)

// Param is one named value of a level line. The raw text is kept as written
// and converted on access; absent parameters are empty placeholders so
// callers never need a nil check.
type Param struct {
	name  string
	value string
	empty bool
	line  *Line

	array       []*Param
	arrayLoaded bool
}

// NewParam creates a param from its name and raw text as read from a file.
func NewParam(name, value string) *Param {
	return &Param{name: name, value: value}
}

// NewEmptyParam creates the placeholder returned for an absent parameter.
func NewEmptyParam(name string) *Param {
	return &Param{name: name, empty: true}
}

// NewIntParam serialises an integer.
func NewIntParam(v int) *Param {
	return &Param{value: strconv.Itoa(v)}
}

// NewFloatParam serialises a float with the shortest exact representation.
func NewFloatParam(v float32) *Param {
	return &Param{value: formatFloat(v)}
}

// NewBoolParam serialises a bool as 1 or 0.
func NewBoolParam(v bool) *Param {
	if v {
		return &Param{value: "1"}
	}
	return &Param{value: "0"}
}

// NewStringParam serialises a string, quoted.
func NewStringParam(v string) *Param {
	return &Param{value: `"` + v + `"`}
}

// NewColorParam serialises a color as r;g;b;a.
func NewColorParam(c data.Color) *Param {
	return NewArrayParam([]*Param{
		NewFloatParam(c.R), NewFloatParam(c.G), NewFloatParam(c.B), NewFloatParam(c.A),
	})
}

// NewPointParam serialises a point, using the x;z shorthand when y is 0.
func NewPointParam(v mgl32.Vec3) *Param {
	if v.Y() == 0 {
		return NewArrayParam([]*Param{NewFloatParam(v.X()), NewFloatParam(v.Z())})
	}
	return NewArrayParam([]*Param{NewFloatParam(v.X()), NewFloatParam(v.Y()), NewFloatParam(v.Z())})
}

// NewObjectTypeParam serialises an object type by its canonical name.
func NewObjectTypeParam(t data.ObjectType) *Param {
	return &Param{value: data.FromObjectType(t)}
}

// NewCameraTypeParam serialises a camera type by its symbolic name.
func NewCameraTypeParam(c data.CameraType) *Param {
	return &Param{value: data.FromCameraType(c)}
}

// NewArrayParam joins already-built children with ';'.
func NewArrayParam(children []*Param) *Param {
	values := make([]string, len(children))
	for i, c := range children {
		values[i] = c.value
	}
	p := &Param{value: strings.Join(values, ";")}
	p.array = children
	p.arrayLoaded = true
	return p
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Name returns the param name, "name[i]" for array children.
func (p *Param) Name() string { return p.name }

// Value returns the raw text, quotes included.
func (p *Param) Value() string { return p.value }

// IsDefined reports whether the parameter was present on its line.
func (p *Param) IsDefined() bool { return !p.empty }

// Line returns the owning line, nil for programmatic params.
func (p *Param) Line() *Line { return p.line }

func (p *Param) setLine(l *Line, name string) {
	p.line = l
	p.name = name
	for i, c := range p.array {
		c.setLine(l, fmt.Sprintf("%s[%d]", name, i))
	}
}

func (p *Param) String() string {
	return p.name + "=" + p.value
}

func (p *Param) fail(kind ParamErrorKind, expected string) error {
	e := &ParamError{Kind: kind, Param: p.name, Value: p.value, Expected: expected}
	if p.line != nil {
		e.File = p.line.File()
		e.Line = p.line.Number()
	}
	return e
}

func (p *Param) missing(expected string) error { return p.fail(Missing, expected) }

func (p *Param) bad(expected string) error { return p.fail(BadType, expected) }

// orDefault returns def for an absent param and defers to get otherwise, so
// a malformed value still fails.
func orDefault[T any](p *Param, def T, get func() (T, error)) (T, error) {
	if p.empty {
		return def, nil
	}
	return get()
}

// AsInt parses a decimal integer.
func (p *Param) AsInt() (int, error) {
	if p.empty {
		return 0, p.missing("int")
	}
	v, err := strconv.Atoi(strings.TrimSpace(p.value))
	if err != nil {
		return 0, p.bad("int")
	}
	return v, nil
}

// AsIntOr is AsInt with a default for an absent param.
func (p *Param) AsIntOr(def int) (int, error) { return orDefault(p, def, p.AsInt) }

// AsFloat parses a float.
func (p *Param) AsFloat() (float32, error) {
	if p.empty {
		return 0, p.missing("float")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.value), 32)
	if err != nil {
		return 0, p.bad("float")
	}
	return float32(v), nil
}

// AsFloatOr is AsFloat with a default for an absent param.
func (p *Param) AsFloatOr(def float32) (float32, error) { return orDefault(p, def, p.AsFloat) }

// AsString requires matching single or double quotes and strips them.
func (p *Param) AsString() (string, error) {
	if p.empty {
		return "", p.missing("string")
	}
	v := p.value
	if len(v) < 2 || v[0] != v[len(v)-1] || (v[0] != '"' && v[0] != '\'') {
		return "", p.bad("string")
	}
	return v[1 : len(v)-1], nil
}

// AsStringOr is AsString with a default for an absent param.
func (p *Param) AsStringOr(def string) (string, error) { return orDefault(p, def, p.AsString) }

// AsBool accepts true/false in any case, or a number where non-zero is true.
func (p *Param) AsBool() (bool, error) {
	if p.empty {
		return false, p.missing("bool")
	}
	v := strings.TrimSpace(p.value)
	switch strings.ToLower(v) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	n, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return false, p.bad("bool")
	}
	return n != 0, nil
}

// AsBoolOr is AsBool with a default for an absent param.
func (p *Param) AsBoolOr(def bool) (bool, error) { return orDefault(p, def, p.AsBool) }

// AsPath resolves a quoted resource path. Level placeholders (%lvl%, %chap%,
// %cat%, %lng%) are expanded from the owning parser; a path with no
// placeholder is prefixed with defaultDir.
func (p *Param) AsPath(defaultDir string) (string, error) {
	path, err := p.AsString()
	if err != nil {
		if pe, ok := err.(*ParamError); ok {
			pe.Expected = "path"
		}
		return "", err
	}

	if strings.Contains(path, "%lvl%") && (defaultDir == "" || !p.levelPaths().HasLevel()) {
		return "", p.bad("path (%lvl% needs a level context)")
	}

	return p.levelPaths().Inject(path, defaultDir), nil
}

// AsPathOr is AsPath with a default for an absent param.
func (p *Param) AsPathOr(defaultDir, def string) (string, error) {
	return orDefault(p, def, func() (string, error) { return p.AsPath(defaultDir) })
}

func (p *Param) levelPaths() *LevelPaths {
	if p.line == nil {
		return nil
	}
	return p.line.paths
}

// AsArray splits the raw value on ';' once and caches the children.
func (p *Param) AsArray() ([]*Param, error) {
	if p.empty {
		return nil, p.missing("array")
	}
	p.parseArray()
	return p.array, nil
}

func (p *Param) parseArray() {
	if p.arrayLoaded {
		return
	}
	p.arrayLoaded = true

	i := 0
	for _, part := range strings.Split(p.value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		child := NewParam(fmt.Sprintf("%s[%d]", p.name, i), part)
		child.line = p.line
		p.array = append(p.array, child)
		i++
	}
}

// AsColor accepts #RRGGBB[AA] or a 3/4 float array. When any array channel
// exceeds 1 every channel, the default alpha included, is divided by 255.
func (p *Param) AsColor() (data.Color, error) {
	if p.empty {
		return data.Color{}, p.missing("color")
	}

	v := strings.TrimSpace(p.value)
	if strings.HasPrefix(v, "#") {
		return p.hexColor(v)
	}

	values, err := p.AsArray()
	if err != nil {
		return data.Color{}, err
	}
	if len(values) < 3 || len(values) > 4 {
		return data.Color{}, p.bad("color")
	}

	ch := [4]float32{0, 0, 0, 1}
	for i, c := range values {
		f, err := c.AsFloat()
		if err != nil {
			return data.Color{}, p.bad("color")
		}
		ch[i] = f
	}

	if ch[0] > 1 || ch[1] > 1 || ch[2] > 1 || ch[3] > 1 {
		for i := range ch {
			ch[i] /= 255
		}
	}
	return data.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func (p *Param) hexColor(v string) (data.Color, error) {
	if len(v) != 7 && len(v) != 9 {
		return data.Color{}, p.bad("color")
	}

	ch := [4]float32{0, 0, 0, 1}
	for i := 0; 1+i*2 < len(v); i++ {
		b, err := strconv.ParseUint(v[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return data.Color{}, p.bad("color")
		}
		ch[i] = float32(b) / 255
	}
	return data.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// AsColorOr is AsColor with a default for an absent param.
func (p *Param) AsColorOr(def data.Color) (data.Color, error) { return orDefault(p, def, p.AsColor) }

// AsPoint reads x;z as (x, 0, z) and x;y;z as is.
func (p *Param) AsPoint() (mgl32.Vec3, error) {
	if p.empty {
		return mgl32.Vec3{}, p.missing("point")
	}
	values, err := p.AsArray()
	if err != nil {
		return mgl32.Vec3{}, err
	}

	coords := make([]float32, len(values))
	for i, c := range values {
		f, err := c.AsFloat()
		if err != nil {
			return mgl32.Vec3{}, p.bad("point")
		}
		coords[i] = f
	}

	switch len(coords) {
	case 2:
		return mgl32.Vec3{coords[0], 0, coords[1]}, nil
	case 3:
		return mgl32.Vec3{coords[0], coords[1], coords[2]}, nil
	}
	return mgl32.Vec3{}, p.bad("point")
}

// AsPointOr is AsPoint with a default for an absent param.
func (p *Param) AsPointOr(def mgl32.Vec3) (mgl32.Vec3, error) { return orDefault(p, def, p.AsPoint) }

// AsAngleOr reads degrees and returns radians. An absent param gives
// defDegrees.
func (p *Param) AsAngleOr(defDegrees float32) (float32, error) {
	deg, err := p.AsFloatOr(defDegrees)
	if err != nil {
		return 0, err
	}
	return deg * math32.Pi / 180, nil
}
