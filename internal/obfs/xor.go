package obfs

// XORCipher applies a byte-wise XOR with a single-byte key. XOR with
// the same byte twice is the identity, so Wrap and Unwrap are the
// same length-preserving transform.
type XORCipher struct {
	key byte
}

// NewXORCipher creates a XOR stream cipher with the given key.
func NewXORCipher(key byte) (Cipher, error) {
	return &XORCipher{key: key}, nil
}

func (c *XORCipher) Name() string {
	return "xor"
}

func (c *XORCipher) Wrap(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key
	}
	return out, nil
}

func (c *XORCipher) Unwrap(data []byte) ([]byte, error) {
	return c.Wrap(data)
}
