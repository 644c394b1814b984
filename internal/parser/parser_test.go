package parser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colobot/colobot-sub009/internal/data"
)

func load(t *testing.T, p *Parser, text string) {
	t.Helper()
	require.NoError(t, p.LoadReader("scene.txt", strings.NewReader(text)))
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	p := New("")
	load(t, p, "// header\n\nLevel unitScale=4 // trailing\n\tTerrainGenerate\n")

	require.Len(t, p.Lines(), 2)
	level := p.Lines()[0]
	assert.Equal(t, "Level", level.Command())
	assert.Equal(t, 3, level.Number())
	assert.Equal(t, "4", level.Param("unitScale").Value())
	assert.Equal(t, 4, p.Lines()[1].Number())
}

func TestLoadUnclosedQuoteNamesLine(t *testing.T) {
	p := New("")
	err := p.LoadReader("scene.txt", strings.NewReader("Title text=\"ok\"\nResume text=\"never closed\n"))
	require.Error(t, err)

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, "Unclosed \"", se.Reason)
}

func TestLoadFirstParamWins(t *testing.T) {
	p := New("")
	load(t, p, "Camera eye=1;2 eye=3;4")

	assert.Equal(t, "1;2", p.Lines()[0].Param("eye").Value())
	assert.Len(t, p.Lines()[0].Params(), 1)
}

func TestLanguageVariants(t *testing.T) {
	text := strings.Join([]string{
		`Title.E text="Hello"`,
		`Title.F text="Bonjour"`,
		`Title.D text="Hallo"`,
		`Resume.F text="Resume"`,
		`Resume.E text="Summary"`,
	}, "\n")

	t.Run("default language", func(t *testing.T) {
		p := New("")
		load(t, p, text)

		require.Equal(t, 2, len(p.Lines()))
		assert.Equal(t, `"Hello"`, p.Get("Title").Param("text").Value())
		assert.Equal(t, `"Summary"`, p.Get("Resume").Param("text").Value())
	})

	t.Run("translated replaces default", func(t *testing.T) {
		p := New("")
		p.SetLanguage("F")
		load(t, p, text)

		require.Equal(t, 1, p.CountLines("Title"))
		assert.Equal(t, `"Bonjour"`, p.Get("Title").Param("text").Value())
		require.Equal(t, 1, p.CountLines("Resume"))
		assert.Equal(t, `"Resume"`, p.Get("Resume").Param("text").Value())
	})
}

func TestInclude(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "levels", "common"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "levels", "common", "terrain.txt"), []byte("TerrainGenerate\nTerrainCreate\n"), 0644))

	p := New(root)
	load(t, p, "Level unitScale=2\n#Include file=\"common/terrain.txt\"\nBeginObject\n")

	var commands []string
	for _, l := range p.Lines() {
		commands = append(commands, l.Command())
	}
	assert.Equal(t, []string{"Level", "TerrainGenerate", "TerrainCreate", "BeginObject"}, commands)
	assert.Equal(t, "levels/common/terrain.txt", p.Lines()[1].File())
}

func TestIncludeCycle(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "levels", "common")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("TerrainGenerate\n#Include file=\"common/b.txt\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("\n#Include file=\"common/a.txt\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "self.txt"), []byte("#Include file=\"common/self.txt\"\n"), 0644))

	err := New(root).Load("levels/common/self.txt")
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "levels/common/self.txt", se.File)
	assert.Equal(t, 1, se.Line)

	err = New(root).Load("levels/common/a.txt")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "levels/common/b.txt", se.File)
	assert.Equal(t, 2, se.Line)

	// The same file may be included twice side by side.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "twice.txt"), []byte("#Include file=\"common/b2.txt\"\n#Include file=\"common/b2.txt\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b2.txt"), []byte("TerrainCreate\n"), 0644))
	p := New(root)
	require.NoError(t, p.Load("levels/common/twice.txt"))
	assert.Equal(t, 2, p.CountLines("TerrainCreate"))
}

func TestUnknownDirective(t *testing.T) {
	p := New("")
	err := p.LoadReader("scene.txt", strings.NewReader("#Define x=1"))

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Line)
}

func TestSaveRoundTrip(t *testing.T) {
	p := New(t.TempDir())
	l := NewLine("CreateObject")
	l.SetParam("type", NewObjectTypeParam(data.ObjectPower))
	l.SetParam("id", NewIntParam(7))
	p.AddLine(l)
	require.NoError(t, p.Save("savegame/data.sav"))

	reread := New(p.Root)
	require.NoError(t, reread.Load("savegame/data.sav"))
	require.Len(t, reread.Lines(), 1)
	typ, err := reread.Lines()[0].Param("type").AsObjectType()
	require.NoError(t, err)
	assert.Equal(t, data.ObjectPower, typ)

	var buf bytes.Buffer
	_, err = reread.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "CreateObject type=PowerCell id=7\n", buf.String())
}

func TestBuildScenePath(t *testing.T) {
	assert.Equal(t, "levels/missions/chapter001/level003/scene.txt", BuildScenePath(data.CategoryMissions, 1, 3))
	assert.Equal(t, "levels/exercises/chapter002/chaptertitle.txt", BuildScenePath(data.CategoryExercises, 2, 0))
	assert.Equal(t, "levels/other/win004.txt", BuildScenePath(data.CategoryWin, 4, 0))
}
