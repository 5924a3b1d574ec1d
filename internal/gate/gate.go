// Package gate implements the session-scoped admin unlock that exposes
// mutation operations.
//
// This is a cosmetic speed-bump, not a security boundary: the secret is
// supplied through local configuration and compared in-process, so anyone
// with access to the machine can discover it. There is no attempt counting
// and no lockout. Real authorization belongs on a server, which is out of
// scope here.
package gate

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"sync"
)

// ErrInvalidSecret is returned for a failed unlock attempt. Callers are
// expected to surface a generic "incorrect password" message.
var ErrInvalidSecret = errors.New("incorrect password")

// Gate holds the {Locked, Unlocked} session state. The zero state is
// Locked, and the state is never persisted: every session starts locked.
type Gate struct {
	mu sync.Mutex
	// digest is the SHA-256 of the configured secret. The plaintext secret
	// is never retained.
	digest [sha256.Size]byte
	// disabled marks a gate built without a secret. It can never unlock:
	// an unset secret must not turn the empty attempt into a master key.
	disabled bool
	unlocked bool
}

// New creates a locked gate guarding the given secret. An empty secret
// produces a gate that rejects every attempt.
func New(secret string) *Gate {
	return &Gate{
		digest:   sha256.Sum256([]byte(secret)),
		disabled: secret == "",
	}
}

// Authenticate unlocks the gate if the attempt matches the configured
// secret. Authenticating while already unlocked is a successful no-op.
// On mismatch, or when no secret is configured, the gate stays locked and
// ErrInvalidSecret is returned.
func (g *Gate) Authenticate(attempt string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.disabled {
		return ErrInvalidSecret
	}
	if g.unlocked {
		return nil
	}
	sum := sha256.Sum256([]byte(attempt))
	if subtle.ConstantTimeCompare(sum[:], g.digest[:]) != 1 {
		return ErrInvalidSecret
	}
	g.unlocked = true
	return nil
}

// Lock returns the gate to the locked state. Idempotent.
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unlocked = false
}

// Unlocked reports whether mutation operations are currently exposed.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}
