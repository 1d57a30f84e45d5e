package shamir

// field.go re-exports the GF(256)/polynomial/randomness machinery of this
// package for the THSS/DSS variant, which shares the same field and
// coefficient-drawing discipline (spec §4.8) but not the Merkle binding.

// Add is GF(256) addition (XOR).
func Add(a, b byte) byte { return gfAdd(a, b) }

// Mul is GF(256) multiplication.
func Mul(a, b byte) byte { return gfMul(a, b) }

// Div is GF(256) division; b == 0 panics.
func Div(a, b byte) byte { return gfDiv(a, b) }

// Inv is the GF(256) multiplicative inverse; a == 0 panics.
func Inv(a byte) byte { return gfInv(a) }

// EvalPolynomial evaluates coeffs (constant term first) at x via Horner's method.
func EvalPolynomial(coeffs []byte, x byte) byte { return hornerEval(coeffs, x) }

// LagrangeWeights precomputes barycentric weights for interpolating at x=0
// over the distinct sample abscissae xs.
func LagrangeWeights(xs []byte) ([]byte, error) { return lagrangeWeights(xs) }

// InterpolateAtZero evaluates f(0) given precomputed weights and y-values.
func InterpolateAtZero(weights, ys []byte) byte { return interpolateAtZero(weights, ys) }

// DrawCoefficients draws (k-1)*secretLen random bytes from rng, reshaped as
// secretLen rows of (k-1) coefficients, rejecting and wholly redrawing any
// row whose top coefficient is zero (spec §4.4 step 4).
func DrawCoefficients(rng Randomness, k uint8, secretLen int) ([]byte, error) {
	return drawCoefficients(rng, k, secretLen)
}
