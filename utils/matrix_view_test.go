package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestColumnRangeDense(t *testing.T) {
	m := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	v, err := ColumnRange(m, 1, 3)
	require.NoError(t, err)
	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.0, v.At(0, 0))
	assert.Equal(t, 7.0, v.At(1, 1))
}

func TestColumnRangeNonSlicer(t *testing.T) {
	// the transpose of a 4x2 is a 2x4 without a Slice method
	src := mat.NewDense(4, 2, []float64{
		1, 5,
		2, 6,
		3, 7,
		4, 8,
	})
	v, err := ColumnRange(src.T(), 2, 4)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{3, 4, 7, 8}), v))
}

func TestColumnRangeErrors(t *testing.T) {
	m := mat.NewDense(2, 3, nil)
	for _, rng := range [][2]int{{-1, 2}, {0, 4}, {2, 2}, {3, 1}} {
		_, err := ColumnRange(m, rng[0], rng[1])
		assert.ErrorIs(t, err, ErrRange, "range %v", rng)
	}
	_, err := ColumnRange(nil, 0, 1)
	assert.ErrorIs(t, err, ErrRange)
	_, err = ColumnRange((*mat.Dense)(nil), 0, 1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestCheckDims(t *testing.T) {
	m := mat.NewDense(2, 3, nil)
	assert.NoError(t, CheckDims("x", m, 2, 3))
	err := CheckDims("x", m, 3, 3)
	require.Error(t, err)
	assert.Equal(t, "x is 2x3, expected 3x3", err.Error())
	assert.Error(t, CheckDims("x", nil, 1, 1))
}

func TestCheckDimsTypedNil(t *testing.T) {
	var d *mat.Dense
	var v *mat.VecDense
	for _, m := range []mat.Matrix{d, v} {
		var err error
		require.NotPanics(t, func() { err = CheckDims("x", m, 1, 1) })
		require.Error(t, err)
		assert.Equal(t, "x is nil, expected 1x1", err.Error())
	}
}
