// Package obfs implements the presentation layer: serialization of
// the application envelope to bytes and a reversible byte-stream
// cipher over the result. The cipher is an obfuscation, not a
// security primitive.
package obfs

import "errors"

// Cipher wraps/unwraps a byte stream with a reversible transform.
type Cipher interface {
	// Name returns the cipher identifier.
	Name() string

	// Wrap applies the transform to plaintext bytes.
	Wrap(data []byte) ([]byte, error)

	// Unwrap reverses the transform.
	Unwrap(data []byte) ([]byte, error)
}

// NewFunc is a constructor function for creating ciphers.
type NewFunc func(key byte) (Cipher, error)

// Registry maps cipher names to constructor functions.
var Registry = map[string]NewFunc{
	"none": NewNoneCipher,
	"xor":  NewXORCipher,
}

// New creates a cipher by name with the given key.
func New(name string, key byte) (Cipher, error) {
	fn, ok := Registry[name]
	if !ok {
		return nil, errors.New("unknown cipher: " + name)
	}
	return fn(key)
}
