package parastell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/test"
)

const stellaratorYAML = `
phi_list: {start: 0, stop: 90, num: 4}
theta_list: [0, 5, 90, 180]
wall_s: 1.08
radial_build:
  first_wall:
    thickness: 5
    h5m_tag: fw_mat
  breeder:
    thickness_matrix:
      - [75, 75, 75, 75]
      - [25, 25, 25, 25]
      - [30, 35, 40, 45]
      - [75, 75, 75, 75]
    h5m_tag: breeder_mat
  shield:
    thickness_matrix:
      - [50, 50, 50, 50]
      - [50, 50, 50, 50]
      - [50, 50, 50, 50]
      - [50, 50, 50, 50]
`

func TestDecode(t *testing.T) {
	b, err := Decode(strings.NewReader(stellaratorYAML))
	require.NoError(t, err)

	assert.Equal(t, Angles{0, 30, 60, 90}, b.PhiList)
	assert.Equal(t, Angles{0, 5, 90, 180}, b.ThetaList)
	assert.Equal(t, 1.08, b.WallS)
	require.Len(t, b.Components, 3)
	assert.Equal(t, "first_wall", b.Components[0].Name)
	assert.Equal(t, 40.0, b.Components[1].ThicknessAt(2, 2))
	assert.Equal(t, 5.0, b.Components[0].ThicknessAt(3, 3))
}

func TestSlice(t *testing.T) {
	b, err := Decode(strings.NewReader(stellaratorYAML))
	require.NoError(t, err)

	slice, err := b.Slice(60, 180)
	require.NoError(t, err)
	expected := build.Build{
		{Name: "first_wall", Thickness: build.Float(5), FloatThickness: true, Description: build.String("fw_mat")},
		{Name: "breeder", Thickness: build.Float(45), FloatThickness: true, Description: build.String("breeder_mat")},
		{Name: "shield", Thickness: build.Float(50), FloatThickness: true},
	}
	if diff := test.DiffModel(t, expected, slice); diff != "" {
		t.Errorf("actual != expected\n%s", diff)
	}

	_, err = b.Slice(45, 0)
	assert.EqualError(t, err, "[parastell] phi 45 is not in phi_list [0 30 60 90]")
	_, err = b.Slice(0, 1)
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	for name, input := range map[string]string{
		"Empty":        "",
		"BadAngles":    "phi_list: 5\ntheta_list: [0]\nradial_build: {a: {thickness: 1}}\n",
		"ShortSpan":    "phi_list: {start: 0, stop: 1, num: 1}\ntheta_list: [0]\nradial_build: {a: {thickness: 1}}\n",
		"WrongRows":    "phi_list: [0, 1]\ntheta_list: [0]\nradial_build: {a: {thickness_matrix: [[1]]}}\n",
		"RaggedMatrix": "phi_list: [0, 1]\ntheta_list: [0, 1]\nradial_build: {a: {thickness_matrix: [[1, 2], [1]]}}\n",
		"NoThickness":  "phi_list: [0]\ntheta_list: [0]\nradial_build: {a: {h5m_tag: x}}\n",
		"Both":         "phi_list: [0]\ntheta_list: [0]\nradial_build: {a: {thickness: 1, thickness_matrix: [[1]]}}\n",
		"Negative":     "phi_list: [0]\ntheta_list: [0]\nradial_build: {a: {thickness: -1}}\n",
		"NoComponents": "phi_list: [0]\ntheta_list: [0]\nradial_build: {}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := test.WriteFile(t, t.TempDir(), "build.yml", stellaratorYAML)
	b, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, b.Components, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
