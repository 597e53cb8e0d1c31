package conf

import (
	"crypto/sha256"
	"fmt"
	"slices"

	"golang.org/x/crypto/pbkdf2"
)

// Cipher configures the presentation layer.
type Cipher struct {
	// Mode selects the byte-stream cipher: none, xor.
	Mode string `yaml:"mode"`
	// Codec selects the envelope serialization: text, cbor.
	Codec string `yaml:"codec"`
	// Key is the single-byte XOR key (0-255).
	Key int `yaml:"key"`
	// Passphrase, when set, derives the key instead of using Key.
	Passphrase string `yaml:"passphrase"`
	Salt       string `yaml:"salt"`

	// KeyByte is the effective key after derivation.
	KeyByte byte `yaml:"-"`
}

const defaultKey = 42

func (c *Cipher) setDefaults() {
	if c.Mode == "" {
		c.Mode = "xor"
	}
	if c.Codec == "" {
		c.Codec = "text"
	}
	if c.Key == 0 && c.Passphrase == "" {
		c.Key = defaultKey
	}
	if c.Salt == "" {
		c.Salt = "stratum"
	}
}

func (c *Cipher) validate() []error {
	var errors []error

	validModes := []string{"none", "xor"}
	if !slices.Contains(validModes, c.Mode) {
		errors = append(errors, fmt.Errorf("cipher mode must be one of: none, xor"))
	}

	validCodecs := []string{"text", "cbor"}
	if !slices.Contains(validCodecs, c.Codec) {
		errors = append(errors, fmt.Errorf("cipher codec must be one of: text, cbor"))
	}

	if c.Key < 0 || c.Key > 255 {
		errors = append(errors, fmt.Errorf("cipher key must be a byte value (0-255)"))
	} else {
		c.KeyByte = byte(c.Key)
	}

	if c.Passphrase != "" {
		derived := pbkdf2.Key([]byte(c.Passphrase), []byte(c.Salt), 4096, 32, sha256.New)
		c.KeyByte = derived[0]
	}

	return errors
}
