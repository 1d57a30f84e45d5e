// Package thss implements the THSS/DSS threshold secret sharing variant of
// spec §4.8: the same GF(256) polynomial machinery as SSS, but with an
// explicit shares_count per share, an optional ordered metadata tag map, and
// no Merkle-signature binding.
package thss

import (
	"sort"

	"github.com/kjsanger/secretshare/internal/shamir"
	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// MinThreshold for THSS is 1: unlike SSS, a trivial one-of-n dealing is
// permitted (the reference's own wire-validation bound is k < 1, not k < 2).
const MinThreshold = 1

// Share is one THSS/DSS share record.
type Share struct {
	ID          uint8
	Threshold   uint8
	SharesCount uint8
	Data        []byte
	Metadata    map[string]string
}

// Split deals secret into n THSS shares requiring k to recover, using the
// operating system's secure randomness. metadata is optional and attached
// unchanged to every share; all shares reference the same map.
//
// k and n are accepted as int at this API boundary (rather than the uint8
// the wire format and Share fields use internally) so that an out-of-range
// share count - including one that would overflow uint8 - is rejected by
// validateSplitParams with ErrInvalidShareCountMax instead of silently
// wrapping during narrowing.
func Split(k, n int, secret []byte, metadata map[string]string) ([]Share, error) {
	return SplitRNG(shamir.SystemRNG{}, k, n, secret, metadata)
}

// SplitRNG is Split parameterized over the randomness port.
func SplitRNG(rng shamir.Randomness, k, n int, secret []byte, metadata map[string]string) ([]Share, error) {
	if err := validateSplitParams(k, n, secret); err != nil {
		return nil, err
	}
	k8, n8 := uint8(k), uint8(n)

	coeffs, err := shamir.DrawCoefficients(rng, k8, len(secret))
	if err != nil {
		return nil, err
	}

	rowWidth := int(k8) - 1
	shares := make([]Share, n8)
	for idx := uint8(1); idx <= n8; idx++ {
		data := make([]byte, len(secret))
		for l := range secret {
			poly := make([]byte, k8)
			poly[0] = secret[l]
			if rowWidth > 0 {
				copy(poly[1:], coeffs[l*rowWidth:l*rowWidth+rowWidth])
			}
			data[l] = shamir.EvalPolynomial(poly, idx)
		}
		shares[idx-1] = Share{
			ID:          idx,
			Threshold:   k8,
			SharesCount: n8,
			Data:        data,
			Metadata:    metadata,
		}
	}
	return shares, nil
}

func validateSplitParams(k, n int, secret []byte) error {
	if k < MinThreshold {
		return sigilerr.ErrThresholdTooSmall
	}
	if n < k {
		return sigilerr.ErrThresholdTooBig
	}
	if n > shamir.MaxShareCount {
		return sigilerr.ErrInvalidShareCountMax
	}
	if len(secret) < 1 {
		return sigilerr.ErrEmptySecret
	}
	if len(secret) > shamir.MaxMessageSize {
		return sigilerr.ErrSecretTooBig
	}
	return nil
}

// Recover reconstructs the secret from a set of THSS shares. THSS carries no
// signature layer, so there is no verify parameter.
func Recover(shares []Share) ([]byte, error) {
	kept, err := selectShares(shares)
	if err != nil {
		return nil, err
	}
	return interpolateShares(kept)
}

func selectShares(shares []Share) ([]Share, error) {
	if len(shares) == 0 {
		return nil, sigilerr.ErrMissingShares
	}

	sorted := make([]Share, len(shares))
	copy(sorted, shares)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	threshold := sorted[0].Threshold
	secretLen := len(sorted[0].Data)
	seen := make(map[uint8]bool, len(sorted))

	var kept []Share
	for _, s := range sorted {
		if s.Threshold != threshold {
			return nil, sigilerr.ErrInconsistentThresholds
		}
		if len(s.Data) != secretLen {
			return nil, sigilerr.ErrInconsistentSecretLengths
		}
		if seen[s.ID] {
			return nil, sigilerr.ErrDuplicateShareID
		}
		seen[s.ID] = true
		kept = append(kept, s)
		if len(kept) == int(threshold) {
			break
		}
	}

	if len(kept) < int(threshold) {
		return nil, sigilerr.ErrMissingShares
	}
	return kept, nil
}

func interpolateShares(shares []Share) ([]byte, error) {
	xs := make([]byte, len(shares))
	for i, s := range shares {
		xs[i] = s.ID
	}

	weights, err := shamir.LagrangeWeights(xs)
	if err != nil {
		return nil, sigilerr.ErrDuplicateShareID
	}

	secretLen := len(shares[0].Data)
	secret := make([]byte, secretLen)
	ys := make([]byte, len(shares))
	for l := 0; l < secretLen; l++ {
		for i, s := range shares {
			ys[i] = s.Data[l]
		}
		secret[l] = shamir.InterpolateAtZero(weights, ys)
	}
	return secret, nil
}
