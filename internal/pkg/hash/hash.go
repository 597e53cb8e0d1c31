// Package hash provides the truncated content checksum attached to
// every segment.
package hash

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// SumLen is the checksum length in hex characters.
const SumLen = 8

// Sum returns the BLAKE3 digest of data truncated to SumLen hex
// characters. Truncation keeps segment headers small; this is an
// integrity check, not an authentication tag.
func Sum(data []byte) string {
	d := blake3.Sum256(data)
	return hex.EncodeToString(d[:])[:SumLen]
}
