// Package protocol defines the error kinds shared by every layer of
// the encapsulation pipeline.
package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode reports a payload that cannot be decoded back into its
	// expected shape: the deciphered bytes are not valid UTF-8, or a
	// serialized structure fails to parse. Aborts decapsulation.
	ErrDecode = errors.New("undecodable payload")

	// ErrProtocol reports a structurally malformed envelope: missing
	// inner unit, wrong unit count, invalid bit string. Aborts
	// decapsulation.
	ErrProtocol = errors.New("malformed envelope")
)

// IntegrityWarning reports a checksum mismatch detected while
// reassembling segments. It is recoverable: reassembly continues with
// the bytes as received, and the warning is returned to the caller
// instead of aborting the pipeline.
type IntegrityWarning struct {
	Seq      int
	Expected string
	Actual   string
}

func (w IntegrityWarning) String() string {
	return fmt.Sprintf("checksum mismatch in segment %d: stored %s, computed %s", w.Seq, w.Expected, w.Actual)
}
