// Package lgr implements the Legendre-Gauss-Radau pseudospectral transcription.
//
// Each mesh interval holds Degree collocation nodes at the Radau points of the
// interval, the last of which coincides with the interval's right endpoint.
// The grid therefore has NumMeshIntervals*Degree + 1 points: the initial time
// plus Degree points per interval.
package lgr

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/notargets/collocation/basis"
	"github.com/notargets/collocation/mesh"
	"github.com/notargets/collocation/transcription"
	"gonum.org/v1/gonum/mat"
)

var _ transcription.Transcription = (*Engine)(nil)

// Engine transcribes a problem onto a fixed mesh with a fixed degree. It is
// immutable after New; all methods are safe for concurrent use.
type Engine struct {
	mesh  *mesh.Mesh
	basis *basis.Table
	grid  mesh.GridIndexer

	numStates      int
	numControls    int
	numMultipliers int

	interpolateControls    bool
	interpolateMultipliers bool

	// Copies of the basis constants used on every evaluation
	weights       []float64
	legendreRoots []float64
	diff          *mat.Dense // [(Degree+1) × Degree]

	times []float64 // Absolute grid times [NumGridPoints]
}

type options struct {
	interpolateControls    bool
	interpolateMultipliers bool
	logger                 *slog.Logger
}

type Option func(*options)

// WithInterpolateControlMidpoints enables CalcInterpolatingControls
func WithInterpolateControlMidpoints(enable bool) Option {
	return func(o *options) { o.interpolateControls = enable }
}

// WithInterpolateMultiplierMidpoints enables CalcInterpolatingMultipliers
func WithInterpolateMultiplierMidpoints(enable bool) Option {
	return func(o *options) { o.interpolateMultipliers = enable }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds the basis table for degree and binds it to the mesh and problem
func New(m *mesh.Mesh, problem transcription.Problem, degree int, opts ...Option) (*Engine, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mesh", transcription.ErrInvalidConfiguration)
	}
	if problem == nil {
		return nil, fmt.Errorf("%w: nil problem", transcription.ErrInvalidConfiguration)
	}
	ns, nc, nm := problem.NumStates(), problem.NumControls(), problem.NumMultipliers()
	if ns < 0 || nc < 0 || nm < 0 {
		return nil, fmt.Errorf("%w: negative variable count (states=%d controls=%d multipliers=%d)",
			transcription.ErrInvalidConfiguration, ns, nc, nm)
	}

	tb, err := basis.NewLGRTable(degree)
	if err != nil {
		return nil, err
	}
	grid, err := mesh.NewGridIndexer(m.NumIntervals(), degree)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		mesh:                   m,
		basis:                  tb,
		grid:                   grid,
		numStates:              ns,
		numControls:            nc,
		numMultipliers:         nm,
		interpolateControls:    o.interpolateControls,
		interpolateMultipliers: o.interpolateMultipliers,
		weights:                tb.Weights(),
		legendreRoots:          tb.LegendreRoots(),
		diff:                   tb.Differentiation(),
		times:                  mesh.GridTimes(m, tb.Nodes()),
	}
	if o.logger != nil {
		o.logger.Debug("built LGR transcription",
			"degree", degree,
			"mesh_intervals", grid.NumIntervals(),
			"grid_points", grid.NumGridPoints(),
			"states", ns,
			"controls", nc,
			"multipliers", nm)
	}
	return e, nil
}

func (e *Engine) Degree() int            { return e.grid.Degree() }
func (e *Engine) NumMeshIntervals() int  { return e.grid.NumIntervals() }
func (e *Engine) NumMeshPoints() int     { return e.mesh.NumPoints() }
func (e *Engine) NumGridPoints() int     { return e.grid.NumGridPoints() }
func (e *Engine) Mesh() *mesh.Mesh       { return e.mesh }
func (e *Engine) Basis() *basis.Table    { return e.basis }
func (e *Engine) Grid() mesh.GridIndexer { return e.grid }

// GridTimes returns a copy of the absolute grid times
func (e *Engine) GridTimes() []float64 { return append([]float64(nil), e.times...) }

func (e *Engine) Counts() transcription.Counts {
	c := transcription.Counts{
		NumGridPoints:    e.NumGridPoints(),
		NumMeshPoints:    e.NumMeshPoints(),
		NumMeshIntervals: e.NumMeshIntervals(),
		Degree:           e.Degree(),
		DefectRows:       e.Degree() * e.numStates,
		DefectCols:       e.NumMeshIntervals(),
	}
	if e.controlsEnabled() {
		c.InterpolatingControls = e.numInterpolatingColumns()
	}
	if e.multipliersEnabled() {
		c.InterpolatingMultipliers = e.numInterpolatingColumns()
	}
	return c
}

// CreateQuadratureCoefficients returns one weight per grid point; the left
// endpoint of each interval is not a collocation node and gets no weight
// from that interval. The weights sum to the horizon duration.
func (e *Engine) CreateQuadratureCoefficients() *mat.VecDense {
	degree := e.Degree()
	quadCoeffs := mat.NewVecDense(e.NumGridPoints(), nil)
	for imesh := 0; imesh < e.NumMeshIntervals(); imesh++ {
		h := e.mesh.IntervalDuration(imesh)
		for d := 0; d < degree; d++ {
			igrid := e.grid.GridIndex(imesh, d+1)
			quadCoeffs.SetVec(igrid, quadCoeffs.AtVec(igrid)+e.weights[d]*h)
		}
	}
	return quadCoeffs
}

// CreateMeshIndices returns 1 at each mesh interval's left endpoint and at the
// final grid point, 0 elsewhere
func (e *Engine) CreateMeshIndices() *mat.VecDense {
	indices := mat.NewVecDense(e.NumGridPoints(), nil)
	for imesh := 0; imesh < e.NumMeshIntervals(); imesh++ {
		indices.SetVec(e.grid.GridIndex(imesh, 0), 1)
	}
	indices.SetVec(e.NumGridPoints()-1, 1)
	return indices
}

// String returns a summary of the transcription
func (e *Engine) String() string {
	var sb strings.Builder
	c := e.Counts()

	sb.WriteString("=== LGR Transcription Summary ===\n")

	sb.WriteString("\n--- Grid ---\n")
	sb.WriteString(fmt.Sprintf("  Degree: %d\n", c.Degree))
	sb.WriteString(fmt.Sprintf("  Mesh points: %d\n", c.NumMeshPoints))
	sb.WriteString(fmt.Sprintf("  Mesh intervals: %d\n", c.NumMeshIntervals))
	sb.WriteString(fmt.Sprintf("  Grid points: %d\n", c.NumGridPoints))
	sb.WriteString(fmt.Sprintf("  Horizon: [%g, %g]\n", e.mesh.InitialTime(), e.mesh.FinalTime()))

	sb.WriteString("\n--- Problem ---\n")
	sb.WriteString(fmt.Sprintf("  States: %d\n", e.numStates))
	sb.WriteString(fmt.Sprintf("  Controls: %d (interpolate: %v)\n", e.numControls, e.interpolateControls))
	sb.WriteString(fmt.Sprintf("  Multipliers: %d (interpolate: %v)\n", e.numMultipliers, e.interpolateMultipliers))

	sb.WriteString("\n--- Outputs ---\n")
	sb.WriteString(fmt.Sprintf("  Defects: %d x %d\n", c.DefectRows, c.DefectCols))
	sb.WriteString(fmt.Sprintf("  Interpolating controls: %d columns\n", c.InterpolatingControls))
	sb.WriteString(fmt.Sprintf("  Interpolating multipliers: %d columns\n", c.InterpolatingMultipliers))
	return sb.String()
}
