package shamir

import "errors"

// errDuplicateAbscissa signals two interpolation points share an x-coordinate;
// callers translate it into the public DuplicateShareID sentinel.
var errDuplicateAbscissa = errors.New("shamir: duplicate interpolation abscissa")

// poly.go implements Horner evaluation and Lagrange interpolation at x=0
// over GF(2^8), used by both the SSS and THSS schemes.

// hornerEval evaluates the polynomial with coefficients [a0, a1, ..., a_{k-1}]
// (a0 is the constant term) at x using Horner's method.
func hornerEval(coeffs []byte, x byte) byte {
	r := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		r = gfMul(r, x) ^ coeffs[i]
	}
	return r
}

// lagrangeWeights precomputes the barycentric weights for interpolating at
// x=0 given the distinct sample abscissae xs. It is computed once per
// recovery and reused across every byte position of the secret. Returns
// errDuplicateAbscissa if any two abscissae coincide.
func lagrangeWeights(xs []byte) ([]byte, error) {
	weights := make([]byte, len(xs))
	for i, xi := range xs {
		w := byte(1)
		for j, xj := range xs {
			if i == j {
				continue
			}
			denom := gfAdd(xj, xi)
			if denom == 0 {
				return nil, errDuplicateAbscissa
			}
			w = gfMul(w, gfDiv(xj, denom))
		}
		weights[i] = w
	}
	return weights, nil
}

// interpolateAtZero evaluates f(0) given precomputed barycentric weights and
// the corresponding y-values.
func interpolateAtZero(weights, ys []byte) byte {
	var val byte
	for i, y := range ys {
		val = gfAdd(val, gfMul(y, weights[i]))
	}
	return val
}
