package obfs

import (
	"errors"

	"stratum/internal/appframe"
)

// Codec serializes the application envelope to the byte stream the
// cipher operates on, and parses it back. Implementations must be
// lossless for every payload, including payloads containing the
// header delimiter sequence.
type Codec interface {
	// Name returns the codec identifier.
	Name() string

	// Encode serializes the envelope to bytes.
	Encode(env appframe.Envelope) ([]byte, error)

	// Decode parses bytes back into an envelope.
	Decode(data []byte) (appframe.Envelope, error)
}

// CodecNewFunc is a constructor function for creating codecs. The
// framer is used by codecs that re-derive the header instead of
// carrying it in the stream.
type CodecNewFunc func(framer *appframe.Framer) (Codec, error)

// CodecRegistry maps codec names to constructor functions.
var CodecRegistry = map[string]CodecNewFunc{
	"text": NewTextCodec,
	"cbor": NewCBORCodec,
}

// NewCodec creates a codec by name.
func NewCodec(name string, framer *appframe.Framer) (Codec, error) {
	fn, ok := CodecRegistry[name]
	if !ok {
		return nil, errors.New("unknown codec: " + name)
	}
	return fn(framer)
}
