package shamir

import (
	"sort"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// sss.go implements the SSS split/recover entry points of spec §4.4.

// maxDegeneracyRetries bounds the whole-batch redraw loop of step 4: the
// reference contract is "redraw until satisfied, or fail"; a fixed cap turns
// that into a terminating operation, including against a FixedRNG whose
// batch cannot ever change across retries.
const maxDegeneracyRetries = 64

// Split deals secret into n shares requiring k to recover, using the
// operating system's secure randomness. If sign is true every share carries
// a Merkle-signature pair binding it to its n siblings.
//
// k and n are accepted as int at this API boundary (rather than the uint8
// the wire format and Share fields use internally) so that an out-of-range
// share count - including one that would overflow uint8 - is rejected by
// validateSplitParams with ErrInvalidShareCountMax instead of silently
// wrapping during narrowing.
func Split(k, n int, secret []byte, sign bool) ([]Share, error) {
	return SplitRNG(SystemRNG{}, k, n, secret, sign)
}

// SplitRNG is Split parameterized over the randomness port, for
// deterministic test vectors and alternate entropy sources.
func SplitRNG(rng Randomness, k, n int, secret []byte, sign bool) ([]Share, error) {
	if err := validateSplitParams(k, n, secret); err != nil {
		return nil, err
	}
	k8, n8 := uint8(k), uint8(n)

	coeffs, err := drawCoefficients(rng, k8, len(secret))
	if err != nil {
		return nil, err
	}

	shares := evaluateShares(secret, coeffs, k8, n8)

	if sign {
		leafTexts := make([][]byte, n8)
		for idx, s := range shares {
			leafTexts[idx] = leafText(s.Threshold, s.ID, s.Data)
		}
		pairs, err := signShares(rng, leafTexts)
		if err != nil {
			return nil, err
		}
		for idx := range shares {
			shares[idx].Signature = &pairs[idx]
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
	if n > MaxShareCount {
		return sigilerr.ErrInvalidShareCountMax
	}
	if len(secret) < 1 {
		return sigilerr.ErrEmptySecret
	}
	if len(secret) > MaxMessageSize {
		return sigilerr.ErrSecretTooBig
	}
	return nil
}

// drawCoefficients draws (k-1)*secretLen random bytes reshaped as secretLen
// rows of (k-1) coefficients each, rejecting (and wholly redrawing) any row
// whose top coefficient is zero so every share polynomial is genuinely
// degree k-1.
func drawCoefficients(rng Randomness, k uint8, secretLen int) ([]byte, error) {
	rowWidth := int(k) - 1
	if rowWidth == 0 {
		return nil, nil
	}

	buf := make([]byte, rowWidth*secretLen)

	for attempt := 0; attempt < maxDegeneracyRetries; attempt++ {
		if err := rng.Fill(buf); err != nil {
			return nil, sigilerr.Wrap(sigilerr.ErrCannotGenerateRandomNumbers, "draw coefficients")
		}
		if !anyRowDegenerate(buf, rowWidth, secretLen) {
			return buf, nil
		}
	}
	return nil, sigilerr.ErrCannotGenerateRandomNumbers
}

func anyRowDegenerate(buf []byte, rowWidth, rows int) bool {
	for row := 0; row < rows; row++ {
		if buf[row*rowWidth+rowWidth-1] == 0 {
			return true
		}
	}
	return false
}

func evaluateShares(secret, coeffs []byte, k, n uint8) []Share {
	rowWidth := int(k) - 1
	shares := make([]Share, n)

	for idx := uint8(1); idx <= n; idx++ {
		data := make([]byte, len(secret))
		for l := range secret {
			poly := make([]byte, k)
			poly[0] = secret[l]
			copy(poly[1:], coeffs[l*rowWidth:l*rowWidth+rowWidth])
			data[l] = hornerEval(poly, idx)
		}
		shares[idx-1] = Share{
			ID:          idx,
			Threshold:   k,
			SharesCount: n,
			Data:        data,
		}
	}
	return shares
}

// Recover reconstructs the secret from a set of shares. If verify is true,
// each of the k shares kept for interpolation (the first k by ascending id)
// must carry a valid signature pair under one common root; shares beyond
// those k are not signature-checked.
func Recover(shares []Share, verify bool) ([]byte, error) {
	kept, err := selectShares(shares)
	if err != nil {
		return nil, err
	}

	if verify {
		if err := verifySignedSet(kept); err != nil {
			return nil, err
		}
	}

	return interpolateShares(kept)
}

// selectShares validates the supplied set and keeps exactly the first k
// shares by ascending id, per the deterministic tie-break of spec §4.4 step 2.
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
		if len(kept) < int(threshold) {
			kept = append(kept, s)
		}
	}

	if len(kept) < int(threshold) {
		return nil, sigilerr.ErrMissingShares
	}
	return kept, nil
}

func verifySignedSet(shares []Share) error {
	var root []byte
	for i, s := range shares {
		if s.Signature == nil {
			return sigilerr.ErrMissingSignatures
		}
		if i == 0 {
			root = s.Signature.Proof.RootHash
		} else if string(root) != string(s.Signature.Proof.RootHash) {
			return sigilerr.ErrInconsistentRootHashes
		}
		if err := verifyShareSignature(s); err != nil {
			return err
		}
	}
	return nil
}

func interpolateShares(shares []Share) ([]byte, error) {
	xs := make([]byte, len(shares))
	for i, s := range shares {
		xs[i] = s.ID
	}

	weights, err := lagrangeWeights(xs)
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
		secret[l] = interpolateAtZero(weights, ys)
	}
	return secret, nil
}
