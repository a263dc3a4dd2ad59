package gonudg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// RootTolerance bounds the last Newton step, relative to 1+|x|
	RootTolerance = 1e-12
	// MaxNewtonIterations caps root polishing for a single node
	MaxNewtonIterations = 50
)

var ErrNoConvergence = errors.New("gonudg: root finding did not converge")

// JacobiGQ computes the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta. The nodes are the zeros of P_{N+1}^{alpha,beta}, in
// ascending order.
//
// Nodes come from the eigenvalues of the symmetric tridiagonal Jacobi matrix
// (Golub-Welsch) and are then polished with Newton iterations on the
// orthonormal polynomial, so the result is reproducible for a given (alpha,
// beta, N).
func JacobiGQ(alpha, beta float64, N int) (X, W []float64, err error) {
	if N < 0 {
		return nil, nil, fmt.Errorf("gonudg: negative quadrature order %d", N)
	}
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{Gamma0(alpha, beta)}
		return X, W, nil
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: d0[i] = -(α²-β²)/((2i+α+β)*(2i+α+β+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2.))
	}
	// 0/0 for the Legendre case
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		d1[i] = 2.0 / (h1[i] + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3),
		)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(NewSymTriDiagonal(d0, d1), true); !ok {
		return nil, nil, fmt.Errorf("%w: eigenvalue decomposition failed for alpha=%g beta=%g N=%d",
			ErrNoConvergence, alpha, beta, N)
	}
	X = eig.Values(nil)

	var VVr mat.Dense
	eig.VectorsTo(&VVr)
	W = make([]float64, len(X))
	g0 := Gamma0(alpha, beta)
	for i := range W {
		v := VVr.At(0, i)
		W[i] = v * v * g0
	}

	for i := range X {
		if X[i], err = polishRoot(X[i], alpha, beta, N+1); err != nil {
			return nil, nil, err
		}
	}
	return X, W, nil
}

// polishRoot refines x0 as a zero of P_n^{alpha,beta} with Newton's method
func polishRoot(x0, alpha, beta float64, n int) (float64, error) {
	x := x0
	for it := 0; it < MaxNewtonIterations; it++ {
		p := JacobiPSingle(x, alpha, beta, n)
		dp := GradJacobiPSingle(x, alpha, beta, n)
		if dp == 0 || math.IsNaN(dp) {
			return x, fmt.Errorf("%w: degenerate derivative at x=%g (n=%d)", ErrNoConvergence, x, n)
		}
		dx := p / dp
		x -= dx
		if math.Abs(dx) <= RootTolerance*(1+math.Abs(x)) {
			return x, nil
		}
	}
	return x, fmt.Errorf("%w: node starting at x=%g after %d iterations (n=%d)",
		ErrNoConvergence, x0, MaxNewtonIterations, n)
}

func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	n := len(d0)
	Tri = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		Tri.SetSym(i, i, d0[i])
		if i < n-1 {
			Tri.SetSym(i, i+1, d1[i])
		}
	}
	return
}
