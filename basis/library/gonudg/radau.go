package gonudg

import "fmt"

// LegendreGaussRadau returns the n point Gauss-Radau rule on [-1,1] that
// includes the right endpoint x=+1 and excludes x=-1.
//
// The interior nodes are the zeros of P_{n-1}^{(1,0)}; their weights follow from
// the Gauss-Jacobi weights as w_i/(1-x_i), and the endpoint weight is 2/n².
// The rule is exact for polynomials up to order 2n-2.
func LegendreGaussRadau(n int) (X, W []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("gonudg: radau rule needs at least one node, got %d", n)
	}
	X = make([]float64, n)
	W = make([]float64, n)
	if n > 1 {
		xint, wint, err := JacobiGQ(1, 0, n-2)
		if err != nil {
			return nil, nil, err
		}
		for i := range xint {
			X[i] = xint[i]
			W[i] = wint[i] / (1 - xint[i])
		}
	}
	X[n-1] = 1
	W[n-1] = 2 / float64(n*n)
	return X, W, nil
}

// LegendreGauss returns the n point Gauss-Legendre rule on [-1,1]. n == 0 gives
// an empty rule.
func LegendreGauss(n int) (X, W []float64, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("gonudg: negative rule size %d", n)
	}
	if n == 0 {
		return []float64{}, []float64{}, nil
	}
	return JacobiGQ(0, 0, n-1)
}
