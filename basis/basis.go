// Package basis holds the per-degree constants of the Legendre-Gauss-Radau
// collocation scheme on the unit interval.
package basis

import (
	"fmt"

	"github.com/notargets/collocation/basis/library/gonudg"
	"github.com/notargets/collocation/transcription"
	"gonum.org/v1/gonum/mat"
)

// Table contains the quadrature, interpolation and differentiation constants
// for one collocation degree. It depends only on the degree and is read-only
// after construction.
type Table struct {
	degree int

	nodes   []float64 // Radau collocation nodes in (0,1], last node is 1
	weights []float64 // Quadrature weights on [0,1], one per node

	// Gauss-Legendre points in (0,1), Degree-1 of them, used for the
	// interpolation consistency of controls and multipliers
	legendreRoots []float64

	// Differentiation matrix [(Degree+1) × Degree]: row j is the node value
	// (row 0 is the interval's left endpoint), column k the collocation node
	differentiation *mat.Dense
}

// NewLGRTable computes the Legendre-Gauss-Radau table for the given degree
func NewLGRTable(degree int) (*Table, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: collocation degree must be >= 1, got %d",
			transcription.ErrInvalidConfiguration, degree)
	}

	xr, wr, err := gonudg.LegendreGaussRadau(degree)
	if err != nil {
		return nil, fmt.Errorf("%w: radau nodes for degree %d: %w",
			transcription.ErrBasisConstruction, degree, err)
	}
	xl, _, err := gonudg.LegendreGauss(degree - 1)
	if err != nil {
		return nil, fmt.Errorf("%w: legendre roots for degree %d: %w",
			transcription.ErrBasisConstruction, degree, err)
	}

	tb := &Table{
		degree:        degree,
		nodes:         make([]float64, degree),
		weights:       make([]float64, degree),
		legendreRoots: make([]float64, degree-1),
	}
	// [-1,1] -> [0,1]
	for i := range xr {
		tb.nodes[i] = (xr[i] + 1) / 2
		tb.weights[i] = wr[i] / 2
	}
	for i := range xl {
		tb.legendreRoots[i] = (xl[i] + 1) / 2
	}

	// Nodal differentiation on {-1, radau nodes}, evaluated at the radau nodes
	r := make([]float64, degree+1)
	r[0] = -1
	copy(r[1:], xr)
	Dr, err := gonudg.Dmatrix1D(degree, r, gonudg.Vandermonde1D(degree, r))
	if err != nil {
		return nil, fmt.Errorf("%w: differentiation matrix for degree %d: %w",
			transcription.ErrBasisConstruction, degree, err)
	}
	// Transpose into (node value, collocation node) orientation and rescale
	// d/dr to d/dtau on the unit interval
	tb.differentiation = mat.NewDense(degree+1, degree, nil)
	for j := 0; j <= degree; j++ {
		for k := 0; k < degree; k++ {
			tb.differentiation.Set(j, k, 2*Dr.At(k+1, j))
		}
	}
	return tb, nil
}

func (tb *Table) Degree() int { return tb.degree }

// Nodes returns a copy of the collocation nodes on [0,1]
func (tb *Table) Nodes() []float64 { return append([]float64(nil), tb.nodes...) }

// Weights returns a copy of the quadrature weights on [0,1]
func (tb *Table) Weights() []float64 { return append([]float64(nil), tb.weights...) }

// LegendreRoots returns a copy of the interior interpolation points on (0,1)
func (tb *Table) LegendreRoots() []float64 {
	return append([]float64(nil), tb.legendreRoots...)
}

// Differentiation returns a copy of the (Degree+1) × Degree differentiation matrix
func (tb *Table) Differentiation() *mat.Dense {
	return mat.DenseCopyOf(tb.differentiation)
}
