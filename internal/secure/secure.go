// Package secure holds secret and recovered-secret bytes in a private copy
// for the lifetime of a split or recover command, mlocking the backing
// memory where the OS supports it and zeroing it on Destroy.
package secure

import (
	"runtime"
	"sync"
)

// Secret wraps a sensitive byte slice with mlock and explicit zeroing.
// It is the secretshare analogue of the dealt/recovered plaintext the CLI
// otherwise only ever zeroes in place: wrapping it here additionally keeps
// it out of swap for as long as the OS allows.
type Secret struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New copies data into a locked buffer. lock selects whether mlock is
// attempted at all; callers pass the configured memory_lock setting so the
// attempt (and its cost) can be disabled entirely. Locking failure is never
// fatal - it degrades to a buffer that is still zeroed on Destroy.
func New(data []byte, lock bool) *Secret {
	s := &Secret{data: make([]byte, len(data))}
	copy(s.data, data)

	if lock {
		s.locked = mlock(s.data)
	}

	runtime.SetFinalizer(s, func(s *Secret) {
		s.Destroy()
	})

	return s
}

// Bytes returns the underlying buffer. The caller must not retain slices of
// it past a call to Destroy.
func (s *Secret) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Locked reports whether the buffer is currently mlocked.
func (s *Secret) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Destroy zeros and unlocks the buffer. Safe to call more than once.
func (s *Secret) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	for i := range s.data {
		s.data[i] = 0
	}

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}
