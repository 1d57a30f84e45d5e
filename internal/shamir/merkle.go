package shamir

import (
	"crypto/ed25519"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// merkle.go implements the share-binding authentication layer: a SHA-512
// Merkle tree over the n leaves of one dealing, plus an ed25519 signature
// over each leaf's canonical text. A verifier who holds k signed shares can
// confirm they were dealt together under one root, without any external
// trust root — integrity and group-binding, not identity.

// MerkleProof is one leaf's authentication path to a dealing's root hash,
// plus the ed25519 public key under which every leaf in the dealing was
// signed.
type MerkleProof struct {
	RootHash  []byte
	Lemma     [][]byte
	LeafIndex int
	PublicKey ed25519.PublicKey
}

// SignaturePair binds a share to its dealing: the ed25519 signature over the
// share's leaf text, and the Merkle proof of that leaf under the dealing's
// root hash.
type SignaturePair struct {
	Signatures [][]byte
	Proof      MerkleProof
}

// leafText is the canonical signed message for a share: "{k}-{id}-{base64(data)}".
func leafText(threshold, id uint8, data []byte) []byte {
	return []byte(fmt.Sprintf("%d-%d-%s", threshold, id, base64NoPad(data)))
}

func hashLeaf(leaf []byte) []byte {
	h := sha512.Sum512(leaf)
	return h[:]
}

// buildMerkleTree hashes n leaves and builds a binary tree bottom-up,
// duplicating the last node of any odd-width level. Returns every level,
// levels[0] being the leaf-hash level and the last level holding the root.
func buildMerkleTree(leafHashes [][]byte) [][][]byte {
	levels := make([][][]byte, 0, 1)
	levels = append(levels, leafHashes)

	cur := leafHashes
	for len(cur) > 1 {
		next := make([][]byte, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			left := cur[i]
			right := cur[i]
			if i+1 < len(cur) {
				right = cur[i+1]
			}
			combined := make([]byte, 0, len(left)+len(right))
			combined = append(combined, left...)
			combined = append(combined, right...)
			h := sha512.Sum512(combined)
			next = append(next, h[:])
		}
		levels = append(levels, next)
		cur = next
	}
	return levels
}

// merkleLemma returns the sibling hash at each level on leafIndex's path to
// the root, bottom to top.
func merkleLemma(levels [][][]byte, leafIndex int) [][]byte {
	lemma := make([][]byte, 0, len(levels)-1)
	idx := leafIndex
	for level := 0; level < len(levels)-1; level++ {
		nodes := levels[level]
		siblingIdx := idx ^ 1
		if siblingIdx >= len(nodes) {
			siblingIdx = idx
		}
		lemma = append(lemma, nodes[siblingIdx])
		idx /= 2
	}
	return lemma
}

// verifyMerkleLemma recomputes the path from leafHash through lemma and
// checks it reaches rootHash.
func verifyMerkleLemma(leafHash []byte, lemma [][]byte, leafIndex int, rootHash []byte) bool {
	cur := leafHash
	idx := leafIndex
	for _, sibling := range lemma {
		var combined []byte
		if idx%2 == 0 {
			combined = append(append([]byte{}, cur...), sibling...)
		} else {
			combined = append(append([]byte{}, sibling...), cur...)
		}
		h := sha512.Sum512(combined)
		cur = h[:]
		idx /= 2
	}
	return subtle.ConstantTimeCompare(cur, rootHash) == 1
}

// signShares generates one ed25519 keypair for the dealing, builds the
// Merkle tree over the n leaf texts, and returns one SignaturePair per
// share in share order.
func signShares(rng Randomness, leafTexts [][]byte) ([]SignaturePair, error) {
	pub, priv, err := ed25519.GenerateKey(rngReader{rng: rng})
	if err != nil {
		return nil, sigilerr.Wrap(sigilerr.ErrCannotGenerateRandomNumbers, "generate signing key")
	}

	leafHashes := make([][]byte, len(leafTexts))
	for i, leaf := range leafTexts {
		leafHashes[i] = hashLeaf(leaf)
	}
	levels := buildMerkleTree(leafHashes)
	root := levels[len(levels)-1][0]

	pairs := make([]SignaturePair, len(leafTexts))
	for i, leaf := range leafTexts {
		sig := ed25519.Sign(priv, leaf)
		pairs[i] = SignaturePair{
			Signatures: [][]byte{sig},
			Proof: MerkleProof{
				RootHash:  root,
				Lemma:     merkleLemma(levels, i),
				LeafIndex: i,
				PublicKey: pub,
			},
		}
	}
	return pairs, nil
}

// verifyShareSignature checks that share's signature pair verifies against
// its own leaf text and Merkle proof.
func verifyShareSignature(share Share) error {
	pair := share.Signature
	if pair == nil || len(pair.Signatures) == 0 {
		return sigilerr.ErrMissingSignatures
	}

	leaf := leafText(share.Threshold, share.ID, share.Data)
	leafHash := hashLeaf(leaf)

	if !verifyMerkleLemma(leafHash, pair.Proof.Lemma, pair.Proof.LeafIndex, pair.Proof.RootHash) {
		return sigilerr.ErrSignatureVerificationFailure
	}

	if !ed25519.Verify(pair.Proof.PublicKey, leaf, pair.Signatures[0]) {
		return sigilerr.ErrSignatureVerificationFailure
	}
	return nil
}
