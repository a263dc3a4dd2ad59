package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/collocation/transcription"
	"github.com/notargets/collocation/transcription/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SchemeLGR, cfg.Scheme)
	assert.Equal(t, DefaultDegree, cfg.Degree)
	assert.True(t, cfg.InterpolateControlMidpoints)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
degree: 4
mesh: [0, 0.25, 1]
initial_time: 1
final_time: 3
interpolate_multiplier_midpoints: false
problem:
  states: 6
  controls: 2
  multipliers: 1
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Degree)
	assert.Equal(t, []float64{0, 0.25, 1}, cfg.Mesh)
	assert.True(t, cfg.InterpolateControlMidpoints)
	assert.False(t, cfg.InterpolateMultiplierMidpoints)
	assert.Equal(t, transcription.StaticProblem{States: 6, Controls: 2, Multipliers: 1}, cfg.Problem)

	tr, err := cfg.Build(nil)
	require.NoError(t, err)
	c := tr.Counts()
	assert.Equal(t, 9, c.NumGridPoints)
	assert.Equal(t, 24, c.DefectRows)
	assert.Equal(t, 6, c.InterpolatingControls)
	assert.Equal(t, 0, c.InterpolatingMultipliers)
	assert.IsType(t, &lgr.Engine{}, tr)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scheme", "scheme: hermite-simpson"},
		{"degree", "degree: 0"},
		{"intervals", "num_mesh_intervals: 0"},
		{"problem", "problem: {states: -1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, transcription.ErrInvalidConfiguration)
		})
	}

	_, err := Parse([]byte("degree: [1"))
	assert.Error(t, err)
}

func TestBuildMeshErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mesh = []float64{0, 0.5, 0.5, 1}
	_, err := cfg.Build(nil)
	assert.ErrorIs(t, err, transcription.ErrInvalidMesh)

	cfg = DefaultConfig()
	cfg.FinalTime = cfg.InitialTime
	_, err = cfg.Build(nil)
	assert.ErrorIs(t, err, transcription.ErrInvalidConfiguration)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lgr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheme: lgr\nnum_mesh_intervals: 4\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NumMeshIntervals)

	m, err := cfg.BuildMesh()
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumIntervals())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
