package lgr

import (
	"fmt"
	"math"
	"testing"

	"github.com/notargets/collocation/transcription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// linearAcrossIntervals fills every interval's interior points on the straight
// line between its endpoint values, placed at the interval's Legendre roots
func linearAcrossIntervals(e *Engine, n int, endpoint func(igrid, row int) float64) *mat.Dense {
	degree := e.Degree()
	roots := e.Basis().LegendreRoots()
	v := mat.NewDense(n, e.NumGridPoints(), nil)
	for imesh := 0; imesh < e.NumMeshIntervals(); imesh++ {
		start, end := e.Grid().IntervalRange(imesh)
		for row := 0; row < n; row++ {
			left, right := endpoint(start, row), endpoint(end-1, row)
			v.Set(row, start, left)
			v.Set(row, end-1, right)
			for d := 0; d < degree-1; d++ {
				v.Set(row, start+d+1, left+roots[d]*(right-left))
			}
		}
	}
	return v
}

func TestCalcInterpolatingLinearIsZero(t *testing.T) {
	endpoint := func(igrid, row int) float64 { return math.Sin(float64(igrid)) * float64(row+1) }
	for d := 1; d <= 6; d++ {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			e := newEngine(t, []float64{0, 0.1, 0.5, 1}, 0, 3,
				transcription.StaticProblem{States: 1, Controls: 3, Multipliers: 2}, d,
				WithInterpolateControlMidpoints(true),
				WithInterpolateMultiplierMidpoints(true))

			controls, err := e.CalcInterpolatingControls(linearAcrossIntervals(e, 3, endpoint))
			require.NoError(t, err)
			multipliers, err := e.CalcInterpolatingMultipliers(linearAcrossIntervals(e, 2, endpoint))
			require.NoError(t, err)

			if d == 1 {
				assert.True(t, controls.IsEmpty())
				assert.True(t, multipliers.IsEmpty())
				return
			}
			r, c := controls.Dims()
			assert.Equal(t, 3, r)
			assert.Equal(t, 3*(d-1), c)
			r, c = multipliers.Dims()
			assert.Equal(t, 2, r)
			assert.Equal(t, 3*(d-1), c)
			assert.Equal(t, 0.0, maxAbs(controls))
			assert.Equal(t, 0.0, maxAbs(multipliers))
		})
	}
}

func TestCalcInterpolatingResidualValues(t *testing.T) {
	e := newEngine(t, []float64{0, 0.5, 1}, 0, 1,
		transcription.StaticProblem{Controls: 1}, 3, WithInterpolateControlMidpoints(true))
	roots := e.Basis().LegendreRoots()
	// endpoints at 0, interior values set to 1: residual is 1 everywhere
	controls := mat.NewDense(1, 7, []float64{0, 1, 1, 0, 1, 1, 0})
	interp, err := e.CalcInterpolatingControls(controls)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, interp.RawMatrix().Data)

	// ramp 0 -> 1 in the first interval with zero interior values
	controls = mat.NewDense(1, 7, []float64{0, 0, 0, 1, 1, 1, 1})
	interp, err = e.CalcInterpolatingControls(controls)
	require.NoError(t, err)
	assert.InDelta(t, -roots[0], interp.At(0, 0), 1e-15)
	assert.InDelta(t, -roots[1], interp.At(0, 1), 1e-15)
	assert.InDelta(t, 0, interp.At(0, 2), 1e-15)
	assert.InDelta(t, 0, interp.At(0, 3), 1e-15)
}

func TestCalcInterpolatingDisabled(t *testing.T) {
	wrongShape := mat.NewDense(5, 2, nil)

	// flags off
	e := newEngine(t, []float64{0, 0.5, 1}, 0, 1,
		transcription.StaticProblem{Controls: 2, Multipliers: 2}, 3)
	out, err := e.CalcInterpolatingControls(wrongShape)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
	out, err = e.CalcInterpolatingMultipliers(wrongShape)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())

	// flags on, no variables
	e = newEngine(t, []float64{0, 0.5, 1}, 0, 1, transcription.StaticProblem{States: 2}, 3,
		WithInterpolateControlMidpoints(true), WithInterpolateMultiplierMidpoints(true))
	out, err = e.CalcInterpolatingControls(nil)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
	out, err = e.CalcInterpolatingMultipliers(nil)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
	assert.Zero(t, e.Counts().InterpolatingControls)
}

func TestCalcInterpolatingDimensionMismatch(t *testing.T) {
	e := newEngine(t, []float64{0, 0.5, 1}, 0, 1,
		transcription.StaticProblem{Controls: 2, Multipliers: 1}, 3,
		WithInterpolateControlMidpoints(true), WithInterpolateMultiplierMidpoints(true))

	_, err := e.CalcInterpolatingControls(mat.NewDense(2, 6, nil))
	require.ErrorIs(t, err, transcription.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "controls is 2x6, expected 2x7")

	_, err = e.CalcInterpolatingMultipliers(mat.NewDense(2, 7, nil))
	require.ErrorIs(t, err, transcription.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "multipliers")
}
