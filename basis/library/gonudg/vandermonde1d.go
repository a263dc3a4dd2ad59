package gonudg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vandermonde1D initializes the 1D Vandermonde matrix V_{ij} = P_j(r_i) of the
// orthonormal Legendre polynomials up to order N
func Vandermonde1D(N int, R []float64) *mat.Dense {
	V1D := mat.NewDense(len(R), N+1, nil)
	for j := 0; j <= N; j++ {
		V1D.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return V1D
}

// GradVandermonde1D initializes the gradient of the modal basis at R
func GradVandermonde1D(N int, R []float64) *mat.Dense {
	DVr := mat.NewDense(len(R), N+1, nil)
	for j := 0; j <= N; j++ {
		DVr.SetCol(j, GradJacobiP(R, 0, 0, j))
	}
	return DVr
}

// Dmatrix1D returns the nodal differentiation matrix Dr = Vr * V^{-1}, so that
// (Dr u)_i approximates u'(r_i) for nodal values u
func Dmatrix1D(N int, R []float64, V *mat.Dense) (*mat.Dense, error) {
	var Vinv mat.Dense
	if err := Vinv.Inverse(V); err != nil {
		return nil, fmt.Errorf("failed to invert Vandermonde matrix: %w", err)
	}
	Vr := GradVandermonde1D(N, R)
	Dr := mat.NewDense(len(R), len(R), nil)
	Dr.Mul(Vr, &Vinv)
	return Dr, nil
}
