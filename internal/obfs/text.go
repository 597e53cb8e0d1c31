package obfs

import (
	"fmt"
	"unicode/utf8"

	"stratum/internal/appframe"
	"stratum/internal/protocol"
)

// TextCodec carries only the UTF-8 payload text in the byte stream.
// The header is a deterministic function of the payload, so Decode
// re-derives it through the framer instead of parsing it out of the
// stream. The encoded length therefore equals the payload's UTF-8
// byte length exactly.
type TextCodec struct {
	framer *appframe.Framer
}

// NewTextCodec creates the payload-only codec.
func NewTextCodec(framer *appframe.Framer) (Codec, error) {
	return &TextCodec{framer: framer}, nil
}

func (c *TextCodec) Name() string {
	return "text"
}

func (c *TextCodec) Encode(env appframe.Envelope) ([]byte, error) {
	return []byte(env.Payload), nil
}

func (c *TextCodec) Decode(data []byte) (appframe.Envelope, error) {
	if !utf8.Valid(data) {
		return appframe.Envelope{}, fmt.Errorf("%w: deciphered bytes are not valid UTF-8", protocol.ErrDecode)
	}
	return c.framer.Encapsulate(string(data)), nil
}
