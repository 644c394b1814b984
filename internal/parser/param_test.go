package parser

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
)

func param(value string) *Param {
	l := NewLine("Test")
	l.SetLocation("scene.txt", 12)
	p := NewParam("x", value)
	l.SetParam("x", p)
	return p
}

func TestArrayIsCached(t *testing.T) {
	p := param("1; 2 ;;3")

	first, err := p.AsArray()
	require.NoError(t, err)
	second, err := p.AsArray()
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Same(t, first[0], second[0])
	assert.Equal(t, "x[2]", first[2].Name())
	assert.Equal(t, "3", first[2].Value())
}

func TestColor(t *testing.T) {
	t.Run("autoscale applies to every channel", func(t *testing.T) {
		c, err := param("300;0;0").AsColor()
		require.NoError(t, err)
		assert.InDelta(t, 300.0/255, c.R, 1e-6)
		assert.Zero(t, c.G)
		assert.Zero(t, c.B)
		assert.InDelta(t, 1.0/255, c.A, 1e-6)
	})

	t.Run("unit range kept", func(t *testing.T) {
		c, err := param("0.5;0.25;1").AsColor()
		require.NoError(t, err)
		assert.Equal(t, data.Color{R: 0.5, G: 0.25, B: 1, A: 1}, c)
	})

	t.Run("hex", func(t *testing.T) {
		c, err := param("#FF000080").AsColor()
		require.NoError(t, err)
		assert.Equal(t, float32(1), c.R)
		assert.InDelta(t, 128.0/255, c.A, 1e-6)

		c, err = param("#00FF00").AsColor()
		require.NoError(t, err)
		assert.Equal(t, float32(1), c.A)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, v := range []string{"1;2", "#12345", "#GG0000", "a;b;c"} {
			_, err := param(v).AsColor()
			assert.ErrorIs(t, err, ErrBadParameterType, v)
		}
	})
}

func TestPoint(t *testing.T) {
	p, err := param("5;9").AsPoint()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{5, 0, 9}, p)

	p, err = param("5;9;2").AsPoint()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{5, 9, 2}, p)

	for _, v := range []string{"5", "1;2;3;4"} {
		_, err := param(v).AsPoint()
		assert.ErrorIs(t, err, ErrBadParameterType, v)
	}
}

func TestDefaultedVersusRequired(t *testing.T) {
	empty := NewLine("Test").Param("count")
	require.NotNil(t, empty)
	assert.False(t, empty.IsDefined())

	_, err := empty.AsInt()
	assert.ErrorIs(t, err, ErrMissingParameter)

	v, err := empty.AsIntOr(7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = param("abc").AsIntOr(7)
	assert.ErrorIs(t, err, ErrBadParameterType)
}

func TestParamErrorCarriesLocation(t *testing.T) {
	_, err := param("abc").AsFloat()

	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "x", pe.Param)
	assert.Equal(t, "scene.txt", pe.File)
	assert.Equal(t, 12, pe.Line)
	assert.Equal(t, "float", pe.Expected)
	assert.Contains(t, err.Error(), "scene.txt:12")
}

func TestStringNeedsQuotes(t *testing.T) {
	s, err := param(`"hello"`).AsString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = param(`'single'`).AsString()
	require.NoError(t, err)
	assert.Equal(t, "single", s)

	_, err = param("bare").AsString()
	assert.ErrorIs(t, err, ErrBadParameterType)

	_, err = param(`"mixed'`).AsString()
	assert.ErrorIs(t, err, ErrBadParameterType)
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"true": true, "FALSE": false, "1": true, "0": false, "0.5": true}
	for in, want := range cases {
		got, err := param(in).AsBool()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := param("yes").AsBool()
	assert.ErrorIs(t, err, ErrBadParameterType)
}

func TestEnums(t *testing.T) {
	typ, err := param("PowerCell").AsObjectType()
	require.NoError(t, err)
	assert.Equal(t, data.ObjectPower, typ)

	typ, err = param("62").AsObjectType()
	require.NoError(t, err)
	assert.Equal(t, data.ObjectShow, typ)

	_, err = param("NotAThing").AsObjectType()
	assert.ErrorIs(t, err, ErrBadParameterType)

	flag, err := param("BotFactory").AsBuildFlag()
	require.NoError(t, err)
	assert.Equal(t, data.BuildFactory, flag)

	sort, err := param("Whatever").AsSortTypeOr(data.SortPoints)
	require.NoError(t, err)
	assert.Equal(t, data.SortID, sort)
}

func TestPath(t *testing.T) {
	t.Run("default dir prefix", func(t *testing.T) {
		p, err := param(`"music.ogg"`).AsPath("music")
		require.NoError(t, err)
		assert.Equal(t, "music/music.ogg", p)
	})

	t.Run("lvl without level context", func(t *testing.T) {
		_, err := param(`"%lvl%/help.txt"`).AsPath("help")
		assert.ErrorIs(t, err, ErrBadParameterType)
	})

	t.Run("lvl with level context", func(t *testing.T) {
		l := NewLine("Test")
		l.paths = NewLevelPaths(data.CategoryMissions, 2, 5)
		pp := NewParam("file", `"%lvl%/help/%lng%.txt"`)
		l.SetParam("file", pp)

		p, err := pp.AsPath("help")
		require.NoError(t, err)
		assert.Equal(t, "levels/missions/chapter002/level005/help/E.txt", p)
	})

	t.Run("language falls back to default", func(t *testing.T) {
		lp := &LevelPaths{Language: "F", Exists: func(path string) bool { return path == "help/E.txt" }}
		assert.Equal(t, "help/E.txt", lp.Inject("%lng%.txt", "help"))
	})
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "1", NewBoolParam(true).Value())
	assert.Equal(t, "2.5", NewFloatParam(2.5).Value())
	assert.Equal(t, `"name"`, NewStringParam("name").Value())
	assert.Equal(t, "1;2", NewPointParam(mgl32.Vec3{1, 0, 2}).Value())
	assert.Equal(t, "1;3;2", NewPointParam(mgl32.Vec3{1, 3, 2}).Value())
	assert.Equal(t, "PowerCell", NewObjectTypeParam(data.ObjectPower).Value())
	assert.Equal(t, "0.5;0.5;0.5;0.5", NewColorParam(data.Gray(0.5)).Value())

	pt, err := NewPointParam(mgl32.Vec3{4, 0, 8}).AsPoint()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{4, 0, 8}, pt)
}
