package utils

import (
	"errors"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

var ErrRange = errors.New("utils: matrix range out of bounds")

type slicer interface {
	Slice(i, k, j, l int) mat.Matrix
}

// ColumnRange returns columns [start, end) of m as a read-only view. Matrices
// that support slicing (e.g. *mat.Dense) share storage with the view; anything
// else is copied. The range must be non-empty and inside m.
func ColumnRange(m mat.Matrix, start, end int) (mat.Matrix, error) {
	if isNil(m) {
		return nil, fmt.Errorf("%w: nil matrix", ErrRange)
	}
	rows, cols := m.Dims()
	if rows == 0 || start < 0 || end > cols || start >= end {
		return nil, fmt.Errorf("%w: columns [%d, %d) of a %dx%d matrix",
			ErrRange, start, end, rows, cols)
	}
	if s, ok := m.(slicer); ok {
		return s.Slice(0, rows, start, end), nil
	}
	view := mat.NewDense(rows, end-start, nil)
	for i := 0; i < rows; i++ {
		for j := start; j < end; j++ {
			view.Set(i, j-start, m.At(i, j))
		}
	}
	return view, nil
}

// CheckDims returns an error naming the matrix unless m is exactly rows x cols
func CheckDims(name string, m mat.Matrix, rows, cols int) error {
	if isNil(m) {
		return fmt.Errorf("%s is nil, expected %dx%d", name, rows, cols)
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return fmt.Errorf("%s is %dx%d, expected %dx%d", name, r, c, rows, cols)
	}
	return nil
}

// isNil reports whether m is nil or an interface holding a nil pointer, such
// as (*mat.Dense)(nil), whose Dims method would panic.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
