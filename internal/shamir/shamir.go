// Package shamir implements Shamir's Secret Sharing over GF(2^8): splitting
// a byte-string secret into n shares such that any k reconstruct it exactly
// while any k-1 reveal nothing, plus an optional Merkle-signature layer that
// binds every share of one dealing to a single proof root.
package shamir

import "math"

// Sharing-parameter bounds shared by split and recover.
const (
	MinThreshold  = 2
	MaxShareCount = 255

	// MaxMessageSize bounds the secret length L so that (k-1)*L random
	// bytes can be drawn and indexed without overflow. The reference
	// implementation uses usize::MAX/254; this is the Go analogue scaled
	// to a practical 32-bit-safe cap (see DESIGN.md).
	MaxMessageSize = math.MaxInt32 / 254
)

// Share is one record produced by a dealing: the evaluation point id, the
// sharing parameters it was dealt under, and its slice of the polynomial
// values. Signature is nil unless the dealing was signed.
type Share struct {
	ID          uint8
	Threshold   uint8
	SharesCount uint8
	Data        []byte
	Signature   *SignaturePair
}
