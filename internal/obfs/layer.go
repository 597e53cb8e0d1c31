package obfs

import (
	"stratum/internal/appframe"
)

// Envelope is the presentation layer's output: the enciphered byte
// stream plus the tags describing how it was produced. Cipher length
// always equals PlainLen; the cipher is length-preserving.
type Envelope struct {
	Cipher   []byte
	Codec    string
	Mode     string
	PlainLen int
}

// Layer combines a codec and a cipher into the presentation layer
// transform.
type Layer struct {
	codec  Codec
	cipher Cipher
}

// NewLayer creates the presentation layer with the named codec and
// cipher mode. The framer is handed to codecs that re-derive headers.
func NewLayer(codecName, mode string, key byte, framer *appframe.Framer) (*Layer, error) {
	codec, err := NewCodec(codecName, framer)
	if err != nil {
		return nil, err
	}
	cipher, err := New(mode, key)
	if err != nil {
		return nil, err
	}
	return &Layer{codec: codec, cipher: cipher}, nil
}

// Encapsulate serializes the application envelope and enciphers the
// result, recording the plaintext byte length.
func (l *Layer) Encapsulate(env appframe.Envelope) (Envelope, error) {
	plain, err := l.codec.Encode(env)
	if err != nil {
		return Envelope{}, err
	}
	enciphered, err := l.cipher.Wrap(plain)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Cipher:   enciphered,
		Codec:    l.codec.Name(),
		Mode:     l.cipher.Name(),
		PlainLen: len(plain),
	}, nil
}

// Decapsulate deciphers the byte stream and parses it back into the
// application envelope. Returns protocol.ErrDecode when the
// deciphered bytes cannot be decoded.
func (l *Layer) Decapsulate(env Envelope) (appframe.Envelope, error) {
	plain, err := l.cipher.Unwrap(env.Cipher)
	if err != nil {
		return appframe.Envelope{}, err
	}
	return l.codec.Decode(plain)
}

// CodecName reports the configured codec identifier.
func (l *Layer) CodecName() string { return l.codec.Name() }

// CipherName reports the configured cipher identifier.
func (l *Layer) CipherName() string { return l.cipher.Name() }
