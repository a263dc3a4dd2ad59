package transcription

import "gonum.org/v1/gonum/mat"

// Problem supplies the variable counts of the optimal control problem being
// transcribed. The dynamics themselves are evaluated elsewhere; the transcription
// only consumes their values.
type Problem interface {
	NumStates() int
	NumControls() int
	NumMultipliers() int
}

// StaticProblem is a Problem with fixed counts
type StaticProblem struct {
	States      int `yaml:"states"`
	Controls    int `yaml:"controls"`
	Multipliers int `yaml:"multipliers"`
}

func (p StaticProblem) NumStates() int      { return p.States }
func (p StaticProblem) NumControls() int    { return p.Controls }
func (p StaticProblem) NumMultipliers() int { return p.Multipliers }

// Counts holds the sizes of everything a transcription produces, so constraint
// assembly can allocate its Jacobian structure before the first evaluation.
type Counts struct {
	NumGridPoints    int // NumMeshIntervals*Degree + 1
	NumMeshPoints    int
	NumMeshIntervals int
	Degree           int // Collocation nodes per mesh interval

	DefectRows               int // Degree * NumStates
	DefectCols               int // NumMeshIntervals
	InterpolatingControls    int // Columns of the control interpolation residual, 0 when disabled
	InterpolatingMultipliers int // Columns of the multiplier interpolation residual, 0 when disabled
}

// Transcription is the capability set of a direct collocation scheme. All
// methods must be safe for concurrent use and must return freshly allocated
// results; implementations never retain the trial matrices passed in.
type Transcription interface {
	Counts() Counts

	// GridTimes returns the absolute time of every grid point
	GridTimes() []float64

	// CreateQuadratureCoefficients returns the weights, one per grid point, that
	// approximate the integral of a quantity sampled on the grid.
	CreateQuadratureCoefficients() *mat.VecDense

	// CreateMeshIndices returns 1 at every grid point on a mesh interval boundary
	// and 0 at interior collocation points.
	CreateMeshIndices() *mat.VecDense

	// CalcDefects returns the dynamics residuals, one column per mesh interval.
	// states holds one NumStates x (Degree+1) matrix per mesh interval and
	// derivatives is NumStates x NumGridPoints.
	CalcDefects(states []mat.Matrix, derivatives mat.Matrix) (*mat.Dense, error)

	// CalcInterpolatingControls and CalcInterpolatingMultipliers return the
	// residual between interior values and the straight line joining the mesh
	// interval endpoints. The result is empty when disabled.
	CalcInterpolatingControls(controls mat.Matrix) (*mat.Dense, error)
	CalcInterpolatingMultipliers(multipliers mat.Matrix) (*mat.Dense, error)
}
