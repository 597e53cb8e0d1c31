package obfs

// NoneCipher is a passthrough cipher that does nothing.
// Used for demonstration and testing.
type NoneCipher struct{}

// NewNoneCipher creates a passthrough cipher.
func NewNoneCipher(key byte) (Cipher, error) {
	return &NoneCipher{}, nil
}

func (c *NoneCipher) Name() string {
	return "none"
}

func (c *NoneCipher) Wrap(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCipher) Unwrap(data []byte) ([]byte, error) {
	return data, nil
}
