// Package session implements the session layer: it tags each message
// with an opaque per-message token. The token carries no cross-call
// state and is discarded on decapsulation.
package session

import (
	"crypto/rand"
	"fmt"
	"strings"

	"stratum/internal/flog"
	"stratum/internal/obfs"
)

// alphabet is the token character set: uppercase letters and digits.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Envelope attaches a session token to the presentation envelope.
type Envelope struct {
	ID    string
	Inner obfs.Envelope
}

type Tagger struct {
	length int
}

// New creates a tagger producing tokens of the given length.
func New(length int) *Tagger {
	return &Tagger{length: length}
}

// Encapsulate attaches a fresh token. Each call draws from the
// crypto-strong random source, so concurrent callers are independent.
func (t *Tagger) Encapsulate(env obfs.Envelope) (Envelope, error) {
	id, err := Token(t.length)
	if err != nil {
		return Envelope{}, fmt.Errorf("generate session token: %w", err)
	}
	return Envelope{ID: id, Inner: env}, nil
}

// Decapsulate strips the token and returns the inner envelope. It
// never fails: there is no session store to validate against, so a
// structurally odd token is only worth a log line.
func (t *Tagger) Decapsulate(env Envelope) obfs.Envelope {
	if !wellFormed(env.ID, t.length) {
		flog.Debugf("session token %q does not match expected shape", env.ID)
	}
	return env.Inner
}

// Token generates a random [A-Z0-9] string of length n using the
// crypto-strong source. Rejection sampling keeps the distribution
// uniform across the 36-character alphabet.
func Token(n int) (string, error) {
	// Largest multiple of len(alphabet) below 256.
	const limit = 252
	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, n)
	for b.Len() < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, c := range buf {
			if c >= limit {
				continue
			}
			b.WriteByte(alphabet[int(c)%len(alphabet)])
			if b.Len() == n {
				break
			}
		}
	}
	return b.String(), nil
}

func wellFormed(id string, length int) bool {
	if len(id) != length {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !strings.ContainsRune(alphabet, rune(id[i])) {
			return false
		}
	}
	return true
}
