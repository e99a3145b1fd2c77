package openmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSettingsUnmarshalYAMLDefaults(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected func() Settings
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		settings := Settings{}
		require.NoError(t, yaml.Unmarshal([]byte(tc.input), &settings))
		assert.Equal(t, tc.expected(), settings)
	}

	testCases := []testCase{
		{
			name:     "Empty",
			input:    "{}",
			expected: DefaultSettings,
		},
		{
			name:  "ParticlesOnly",
			input: "particles: 5000",
			expected: func() Settings {
				s := DefaultSettings()
				s.Particles = 5000
				return s
			},
		},
		{
			name:  "SourcePositionKeepsEnergy",
			input: "source: {position: [1, 2, 3]}",
			expected: func() Settings {
				s := DefaultSettings()
				s.Source.Position = &[3]float64{1, 2, 3}
				return s
			},
		},
		{
			name:  "Eigenvalue",
			input: "run_mode: eigenvalue\nbatches: 20\ninactive: 5\nsource: null",
			expected: func() Settings {
				s := DefaultSettings()
				s.RunMode = Eigenvalue
				s.Batches = 20
				s.Inactive = 5
				s.Source = nil
				return s
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			check(t, tc)
		})
	}
}

func TestPartialSettingsSerialize(t *testing.T) {
	settings := Settings{}
	require.NoError(t, yaml.Unmarshal([]byte("particles: 5000"), &settings))
	settings = settings.WithSourcePosition(1000, 0, 0)
	require.NoError(t, settings.Validate())

	content, err := marshal(convertSettings(settings))
	require.NoError(t, err)
	assert.Contains(t, content, "<run_mode>fixed source</run_mode>")
	assert.Contains(t, content, "<particles>5000</particles>")
	assert.Contains(t, content, `<space type="point" parameters="1000.0 0.0 0.0"></space>`)
	assert.Contains(t, content, `<energy type="discrete" parameters="14100000.0 1.0"></energy>`)
}
