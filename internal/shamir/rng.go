package shamir

import (
	"crypto/rand"
	"errors"
	"io"
)

// errRNGExhausted signals that a FixedRNG could not satisfy a fill request;
// callers translate it into the public CannotGenerateRandomNumbers sentinel.
var errRNGExhausted = errors.New("shamir: random source exhausted")

// Randomness is the capability a dealing draws coefficients and signing-key
// material from: fill a byte span with cryptographically secure randomness.
// It is passed as a plain argument rather than threaded through any
// inheritance hierarchy.
type Randomness interface {
	Fill(dest []byte) error
}

// SystemRNG draws from the operating system's entropy source.
type SystemRNG struct{}

// Fill reads len(dest) bytes from crypto/rand.Reader into dest.
func (SystemRNG) Fill(dest []byte) error {
	_, err := io.ReadFull(rand.Reader, dest)
	return err
}

// FixedRNG is a deterministic test double. It always serves its request from
// the head of a fixed source buffer, mirroring the reference implementation's
// test double: it does not track a read cursor across calls, so the same
// source always answers the same request the same way.
type FixedRNG struct {
	src []byte
}

// NewFixedRNG constructs a FixedRNG over src. src must not be empty.
func NewFixedRNG(src []byte) *FixedRNG {
	if len(src) == 0 {
		panic("shamir: FixedRNG source cannot be empty")
	}
	return &FixedRNG{src: src}
}

// Fill copies the leading len(dest) bytes of the source into dest. It errors
// if the request is larger than the source buffer.
func (f *FixedRNG) Fill(dest []byte) error {
	if len(dest) > len(f.src) {
		return errRNGExhausted
	}
	copy(dest, f.src[:len(dest)])
	return nil
}

// rngReader adapts a Randomness port to an io.Reader, for APIs (such as
// crypto/ed25519.GenerateKey) that require one.
type rngReader struct {
	rng Randomness
}

func (r rngReader) Read(p []byte) (int, error) {
	if err := r.rng.Fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
