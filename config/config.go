package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/notargets/collocation/mesh"
	"github.com/notargets/collocation/transcription"
	"github.com/notargets/collocation/transcription/lgr"
	"gopkg.in/yaml.v3"
)

const (
	SchemeLGR = "legendre-gauss-radau"

	DefaultDegree           = 3
	DefaultNumMeshIntervals = 10
	DefaultInitialTime      = 0.0
	DefaultFinalTime        = 1.0
)

// Config describes one transcription: the scheme, its mesh and the problem
// dimensions. When Mesh is empty a uniform mesh of NumMeshIntervals is used.
type Config struct {
	Scheme           string    `yaml:"scheme"`
	Degree           int       `yaml:"degree"`
	Mesh             []float64 `yaml:"mesh"`
	NumMeshIntervals int       `yaml:"num_mesh_intervals"`
	InitialTime      float64   `yaml:"initial_time"`
	FinalTime        float64   `yaml:"final_time"`

	InterpolateControlMidpoints    bool `yaml:"interpolate_control_midpoints"`
	InterpolateMultiplierMidpoints bool `yaml:"interpolate_multiplier_midpoints"`

	Problem transcription.StaticProblem `yaml:"problem"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme:                         SchemeLGR,
		Degree:                         DefaultDegree,
		NumMeshIntervals:               DefaultNumMeshIntervals,
		InitialTime:                    DefaultInitialTime,
		FinalTime:                      DefaultFinalTime,
		InterpolateControlMidpoints:    true,
		InterpolateMultiplierMidpoints: true,
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that are not validated by mesh and engine
// construction
func (c *Config) Validate() error {
	switch c.Scheme {
	case SchemeLGR, "lgr":
	default:
		return fmt.Errorf("%w: unknown transcription scheme %q", transcription.ErrInvalidConfiguration, c.Scheme)
	}
	if c.Degree < 1 {
		return fmt.Errorf("%w: degree must be >= 1, got %d", transcription.ErrInvalidConfiguration, c.Degree)
	}
	if len(c.Mesh) == 0 && c.NumMeshIntervals < 1 {
		return fmt.Errorf("%w: either mesh or num_mesh_intervals >= 1 is required",
			transcription.ErrInvalidConfiguration)
	}
	if c.Problem.States < 0 || c.Problem.Controls < 0 || c.Problem.Multipliers < 0 {
		return fmt.Errorf("%w: negative problem dimensions %+v", transcription.ErrInvalidConfiguration, c.Problem)
	}
	return nil
}

func (c *Config) BuildMesh() (*mesh.Mesh, error) {
	if len(c.Mesh) > 0 {
		return mesh.NewMesh(c.Mesh, c.InitialTime, c.FinalTime)
	}
	return mesh.NewUniformMesh(c.NumMeshIntervals, c.InitialTime, c.FinalTime)
}

// Build constructs the transcription named by Scheme
func (c *Config) Build(logger *slog.Logger) (transcription.Transcription, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, err := c.BuildMesh()
	if err != nil {
		return nil, err
	}
	e, err := lgr.New(m, c.Problem, c.Degree,
		lgr.WithInterpolateControlMidpoints(c.InterpolateControlMidpoints),
		lgr.WithInterpolateMultiplierMidpoints(c.InterpolateMultiplierMidpoints),
		lgr.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return e, nil
}
