package session

import (
	"strings"
	"testing"

	"stratum/internal/obfs"
)

func TestToken(t *testing.T) {
	for _, n := range []int{1, 8, 16, 64} {
		id, err := Token(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(id) != n {
			t.Errorf("Token(%d) length = %d", n, len(id))
		}
		for _, c := range id {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Token(%d) contains %q outside [A-Z0-9]", n, c)
			}
		}
	}
}

func TestTokenFresh(t *testing.T) {
	a, err := Token(16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Token(16)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("two tokens are identical: %s", a)
	}
}

func TestTaggerRoundTrip(t *testing.T) {
	tagger := New(16)
	inner := obfs.Envelope{Cipher: []byte{1, 2, 3}, Codec: "text", Mode: "xor", PlainLen: 3}

	env, err := tagger.Encapsulate(inner)
	if err != nil {
		t.Fatal(err)
	}
	if len(env.ID) != 16 {
		t.Errorf("session id length = %d, want 16", len(env.ID))
	}

	out := tagger.Decapsulate(env)
	if string(out.Cipher) != string(inner.Cipher) || out.PlainLen != inner.PlainLen {
		t.Errorf("inner envelope not preserved: %+v", out)
	}
}

func TestDecapsulateOddToken(t *testing.T) {
	tagger := New(16)
	inner := obfs.Envelope{Cipher: []byte{9}, PlainLen: 1}

	// Structural oddities never fail decapsulation.
	for _, id := range []string{"", "short", "lowercase12345xx", strings.Repeat("A", 99)} {
		out := tagger.Decapsulate(Envelope{ID: id, Inner: inner})
		if out.PlainLen != 1 {
			t.Errorf("token %q: inner envelope not returned", id)
		}
	}
}
