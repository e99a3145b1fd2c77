package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalinn/radialbuild/build"
)

const plotYAML = `
title: Example Radial Build
max_thickness: 40
build:
  SOL:
    thickness: 4
  FW:
    thickness: 4
    composition:
      MF82H: 0.34
      He: 0.66
  Breeder:
    thickness: 50
    composition:
      FNSFDCLL: 1.0
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(plotYAML))
	require.NoError(t, err)

	assert.Equal(t, "Example Radial Build", p.Title)
	assert.Equal(t, []string{"SOL", "FW", "Breeder"}, p.Build.Names())
	assert.Equal(t, 40.0, p.MaxThickness)
	assert.Equal(t, DefaultMaxCharacters, p.MaxCharacters)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, DefaultUnit, p.Unit)
	assert.Nil(t, p.Colors)
	assert.Equal(t, "ExampleRadialBuild", p.FileName())
}

func TestDecodeDefaultTitle(t *testing.T) {
	p, err := Decode(strings.NewReader("build:\n  FW: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, CLITitle, p.Title)
}

func TestDecodeErrors(t *testing.T) {
	for name, input := range map[string]string{
		"Empty":         "",
		"UnknownField":  "build: {FW: {}}\ntitel: x\n",
		"Malformed":     "build: [",
		"NegativeWidth": "build: {FW: {}}\nmax_characters: -1\n",
		"BadColor":      "build: {FW: {}}\ncolors: [nope]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestSaveYAML(t *testing.T) {
	dir := t.TempDir()
	p := New(build.Build{
		{Name: "FW", Thickness: build.Float(4)},
		{Name: "VV", Thickness: build.Float(30)},
	})
	p.Title = "My Build"

	path, err := p.SaveYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "MyBuild.yml"), path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.Build, loaded.Build)
	assert.Equal(t, "My Build", loaded.Title)
	assert.Equal(t, []string{"#acc2d9", "#56ae57"}, loaded.Colors)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	p := New(build.Build{{Name: "FW", Thickness: build.Float(4)}})

	for _, f := range []Format{SVG, PNG} {
		path, err := p.Save(dir, "", f)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "radial_build."+string(f)), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	path, err := p.Save(dir, "custom", SVG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.svg"), path)
}

func TestRender(t *testing.T) {
	p := New(build.Build{{Name: "FW", Thickness: build.Float(4)}})
	assert.Error(t, p.Render(&bytes.Buffer{}, Format("pdf")))

	f, err := ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}
