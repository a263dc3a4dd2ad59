package lgr

import (
	"fmt"

	"github.com/notargets/collocation/transcription"
	"github.com/notargets/collocation/utils"
	"gonum.org/v1/gonum/mat"
)

// CalcInterpolatingControls returns the control interpolation residuals, or an
// empty matrix when control interpolation is disabled or there are no controls
func (e *Engine) CalcInterpolatingControls(controls mat.Matrix) (*mat.Dense, error) {
	if !e.controlsEnabled() {
		return &mat.Dense{}, nil
	}
	return e.calcInterpolatingVariables("controls", controls, e.numControls)
}

// CalcInterpolatingMultipliers is CalcInterpolatingControls for the kinematic
// constraint multipliers
func (e *Engine) CalcInterpolatingMultipliers(multipliers mat.Matrix) (*mat.Dense, error) {
	if !e.multipliersEnabled() {
		return &mat.Dense{}, nil
	}
	return e.calcInterpolatingVariables("multipliers", multipliers, e.numMultipliers)
}

func (e *Engine) controlsEnabled() bool    { return e.interpolateControls && e.numControls > 0 }
func (e *Engine) multipliersEnabled() bool { return e.interpolateMultipliers && e.numMultipliers > 0 }

// numInterpolatingColumns is the Degree-1 interior points of every interval
func (e *Engine) numInterpolatingColumns() int {
	return e.NumMeshIntervals() * (e.Degree() - 1)
}

// calcInterpolatingVariables compares the value at each interior point d of an
// interval with the straight line between the interval endpoints evaluated at
// the d-th Legendre root:
//
//	v(d+1) - (root[d]*(v(end) - v(start)) + v(start))
//
// Column imesh*(Degree-1)+d of the result holds that residual.
func (e *Engine) calcInterpolatingVariables(name string, variables mat.Matrix, n int) (*mat.Dense, error) {
	degree := e.Degree()
	if err := utils.CheckDims(name, variables, n, e.NumGridPoints()); err != nil {
		return nil, fmt.Errorf("%w: %w", transcription.ErrDimensionMismatch, err)
	}
	cols := e.numInterpolatingColumns()
	if cols == 0 {
		return &mat.Dense{}, nil
	}

	interp := mat.NewDense(n, cols, nil)
	for imesh := 0; imesh < e.NumMeshIntervals(); imesh++ {
		start, end := e.grid.IntervalRange(imesh)
		v, err := utils.ColumnRange(variables, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: %s for mesh interval %d: %w",
				transcription.ErrDimensionMismatch, name, imesh, err)
		}
		for d := 0; d < degree-1; d++ {
			col := imesh*(degree-1) + d
			for row := 0; row < n; row++ {
				left, right := v.At(row, 0), v.At(row, degree)
				interp.Set(row, col, v.At(row, d+1)-(e.legendreRoots[d]*(right-left)+left))
			}
		}
	}
	return interp, nil
}
