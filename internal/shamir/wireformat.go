package shamir

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/fxamacker/cbor/v2"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// wireformat.go implements the canonical share text "{k}-{i}-{base64(payload)}"
// and the CBOR binary schema carried inside it, per spec §4.6/§6.

var cborEncMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// sssSharePayload is the tag-numbered binary schema for one SSS share. The
// reference schema carries only shamir_data/signature/proof; id and
// threshold are added here so the generic cross-check of spec §4.6 step 4
// has something to validate for unsigned SSS shares too (see DESIGN.md).
type sssSharePayload struct {
	Threshold uint8               `cbor:"1,keyasint"`
	ID        uint8               `cbor:"2,keyasint"`
	Data      []byte              `cbor:"3,keyasint"`
	Sig       [][]byte            `cbor:"4,keyasint,omitempty"`
	Proof     *merkleProofPayload `cbor:"5,keyasint,omitempty"`
}

type merkleProofPayload struct {
	RootHash  []byte   `cbor:"1,keyasint"`
	Lemma     [][]byte `cbor:"2,keyasint"`
	LeafIndex uint32   `cbor:"3,keyasint"`
	PublicKey []byte   `cbor:"4,keyasint"`
}

func base64NoPad(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

func base64NoPadDecode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(s)
}

// EncodeShareText serializes a Share into its canonical "k-i-base64" text.
func EncodeShareText(s Share) (string, error) {
	payload := sssSharePayload{
		Threshold: s.Threshold,
		ID:        s.ID,
		Data:      s.Data,
	}
	if s.Signature != nil {
		payload.Sig = s.Signature.Signatures
		payload.Proof = &merkleProofPayload{
			RootHash:  s.Signature.Proof.RootHash,
			Lemma:     s.Signature.Proof.Lemma,
			LeafIndex: uint32(s.Signature.Proof.LeafIndex),
			PublicKey: s.Signature.Proof.PublicKey,
		}
	}

	encoded, err := cborEncMode.Marshal(payload)
	if err != nil {
		return "", sigilerr.Wrap(err, "encode share payload")
	}

	return fmt.Sprintf("%d-%d-%s", s.Threshold, s.ID, base64NoPad(encoded)), nil
}

// ParseShareText parses the canonical "k-i-base64" share text into a Share,
// cross-checking the decoded payload's k/i against the parsed text.
func ParseShareText(text string) (Share, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Split(trimmed, "-")
	if len(parts) != 3 {
		return Share{}, withSeparatorSuggestion(sigilerr.ErrShareParsingError, trimmed)
	}

	k, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || k < MinThreshold {
		return Share{}, sigilerr.ErrShareParsingInvalidShareThreshold
	}

	i, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || i < 1 {
		return Share{}, sigilerr.ErrShareParsingInvalidShareID
	}

	if parts[2] == "" {
		return Share{}, sigilerr.ErrShareParsingEmptyShare
	}

	raw, err := base64NoPadDecode(parts[2])
	if err != nil {
		return Share{}, sigilerr.Wrap(sigilerr.ErrShareParsingError, "decode base64 payload")
	}

	var payload sssSharePayload
	if err := cbor.Unmarshal(raw, &payload); err != nil {
		return Share{}, sigilerr.Wrap(sigilerr.ErrShareParsingError, "decode share payload")
	}

	if uint64(payload.Threshold) != k || uint64(payload.ID) != i {
		return Share{}, sigilerr.ErrShareParsingError
	}

	share := Share{
		Threshold: payload.Threshold,
		ID:        payload.ID,
		Data:      payload.Data,
	}
	if payload.Proof != nil {
		share.Signature = &SignaturePair{
			Signatures: payload.Sig,
			Proof: MerkleProof{
				RootHash:  payload.Proof.RootHash,
				Lemma:     payload.Proof.Lemma,
				LeafIndex: int(payload.Proof.LeafIndex),
				PublicKey: payload.Proof.PublicKey,
			},
		}
	}
	return share, nil
}

// withSeparatorSuggestion attaches a did-you-mean suggestion when the
// supplied text uses a plausible-but-wrong separator, nudging the caller
// toward the canonical "k-i-base64" shape. The candidate with the smallest
// edit distance to the canonical shape (dashes in place of the offending
// separator) is what gets suggested.
func withSeparatorSuggestion(base error, text string) error {
	const canonicalPattern = "k-i-base64"

	best := text
	bestDist := levenshtein.ComputeDistance(text, canonicalPattern)
	for _, sep := range []string{"_", ":", ".", "/", " "} {
		candidate := strings.ReplaceAll(text, sep, "-")
		if d := levenshtein.ComputeDistance(candidate, canonicalPattern); d < bestDist {
			best, bestDist = candidate, d
		}
	}

	if best == text {
		return sigilerr.WithSuggestion(base, fmt.Sprintf("expected the %s shape; got %q", canonicalPattern, text))
	}
	return sigilerr.WithSuggestion(base, fmt.Sprintf("did you mean %q?", best))
}
