package lgr

import (
	"fmt"

	"github.com/notargets/collocation/transcription"
	"github.com/notargets/collocation/utils"
	"gonum.org/v1/gonum/mat"
)

// CalcDefects returns the collocation residuals
//
//	h * xdot_i - x_i * D
//
// for every mesh interval i, where x_i holds the interval's Degree+1 node
// values, xdot_i the derivatives at its Degree collocation nodes and h the
// interval's absolute duration. Row block d of column i holds the residual at
// collocation node d, giving a (Degree*NumStates) x NumMeshIntervals matrix.
// The result is empty when the problem has no states.
func (e *Engine) CalcDefects(states []mat.Matrix, derivatives mat.Matrix) (*mat.Dense, error) {
	ns, degree := e.numStates, e.Degree()
	if err := e.checkDefectInputs(states, derivatives); err != nil {
		return nil, err
	}
	if ns == 0 {
		return &mat.Dense{}, nil
	}

	defects := mat.NewDense(degree*ns, e.NumMeshIntervals(), nil)
	var dx mat.Dense
	for imesh := 0; imesh < e.NumMeshIntervals(); imesh++ {
		start, end := e.grid.IntervalRange(imesh)
		h := e.times[end-1] - e.times[start]

		// The left endpoint is not a collocation node
		xdotI, err := utils.ColumnRange(derivatives, start+1, end)
		if err != nil {
			return nil, fmt.Errorf("%w: derivatives for mesh interval %d: %w",
				transcription.ErrDimensionMismatch, imesh, err)
		}

		// Derivative of the state interpolant at each collocation node,
		// per unit normalized time
		dx.Reset()
		dx.Mul(states[imesh], e.diff)

		for d := 0; d < degree; d++ {
			for s := 0; s < ns; s++ {
				defects.Set(d*ns+s, imesh, h*xdotI.At(s, d)-dx.At(s, d))
			}
		}
	}
	return defects, nil
}

func (e *Engine) checkDefectInputs(states []mat.Matrix, derivatives mat.Matrix) error {
	ns, degree := e.numStates, e.Degree()
	if len(states) != e.NumMeshIntervals() {
		return fmt.Errorf("%w: got state matrices for %d mesh intervals, expected %d",
			transcription.ErrDimensionMismatch, len(states), e.NumMeshIntervals())
	}
	if ns == 0 {
		return nil
	}
	for imesh, x := range states {
		name := fmt.Sprintf("states for mesh interval %d", imesh)
		if err := utils.CheckDims(name, x, ns, degree+1); err != nil {
			return fmt.Errorf("%w: %w", transcription.ErrDimensionMismatch, err)
		}
	}
	if err := utils.CheckDims("derivatives", derivatives, ns, e.NumGridPoints()); err != nil {
		return fmt.Errorf("%w: %w", transcription.ErrDimensionMismatch, err)
	}
	return nil
}
