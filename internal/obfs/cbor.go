package obfs

import (
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"

	"stratum/internal/appframe"
	"stratum/internal/protocol"
)

// CBORCodec carries header and payload as distinct fields of a CBOR
// map. The encoding is self-describing, so splitting never depends on
// a delimiter and payloads containing the header delimiter sequence
// round-trip unchanged.
type CBORCodec struct{}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): the same
// envelope always produces identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("obfs: CBOR encoder initialization failed: " + err.Error())
	}
}

type cborEnvelope struct {
	Header  string `cbor:"h"`
	Payload string `cbor:"p"`
}

// NewCBORCodec creates the structured header+payload codec.
func NewCBORCodec(framer *appframe.Framer) (Codec, error) {
	return &CBORCodec{}, nil
}

func (c *CBORCodec) Name() string {
	return "cbor"
}

func (c *CBORCodec) Encode(env appframe.Envelope) ([]byte, error) {
	data, err := encMode.Marshal(cborEnvelope{Header: env.Header, Payload: env.Payload})
	if err != nil {
		return nil, fmt.Errorf("serialize envelope: %w", err)
	}
	return data, nil
}

func (c *CBORCodec) Decode(data []byte) (appframe.Envelope, error) {
	var env cborEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return appframe.Envelope{}, fmt.Errorf("%w: %v", protocol.ErrDecode, err)
	}
	if !utf8.ValidString(env.Header) || !utf8.ValidString(env.Payload) {
		return appframe.Envelope{}, fmt.Errorf("%w: envelope fields are not valid UTF-8", protocol.ErrDecode)
	}
	return appframe.Envelope{Header: env.Header, Payload: env.Payload}, nil
}
