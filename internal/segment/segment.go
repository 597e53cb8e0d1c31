// Package segment implements the transport layer: it splits the
// enciphered byte stream into bounded chunks tagged with sequence
// numbers, port numbers and content checksums, and reassembles them.
package segment

import (
	"sort"

	"stratum/internal/obfs"
	"stratum/internal/pkg/hash"
	"stratum/internal/protocol"
	"stratum/internal/session"
)

// Segment is one bounded-size chunk of the cipher stream.
type Segment struct {
	Seq      int
	SrcPort  uint16
	DstPort  uint16
	Checksum string
	Payload  []byte
}

// Set is the transport layer's output: all segments of one message in
// ascending sequence order, plus the session token they belong to.
type Set struct {
	Segments  []Segment
	SessionID string
}

// Total returns the segment count.
func (s Set) Total() int { return len(s.Segments) }

type Segmenter struct {
	chunk   int
	srcPort uint16
	dstPort uint16
	codec   string
	mode    string
}

// New creates a segmenter producing chunks of at most chunk bytes.
// The codec and mode tags are restamped onto the envelope rebuilt by
// Decapsulate; they describe the presentation configuration this
// segmenter sits above.
func New(chunk int, srcPort, dstPort uint16, codec, mode string) *Segmenter {
	return &Segmenter{
		chunk:   chunk,
		srcPort: srcPort,
		dstPort: dstPort,
		codec:   codec,
		mode:    mode,
	}
}

// Encapsulate partitions the cipher stream into chunks in original
// order, assigning sequence numbers from 0 and a checksum per chunk.
// A zero-length stream yields zero segments.
func (s *Segmenter) Encapsulate(env session.Envelope) Set {
	data := env.Inner.Cipher
	segments := make([]Segment, 0, (len(data)+s.chunk-1)/s.chunk)
	for off := 0; off < len(data); off += s.chunk {
		end := off + s.chunk
		if end > len(data) {
			end = len(data)
		}
		payload := make([]byte, end-off)
		copy(payload, data[off:end])
		segments = append(segments, Segment{
			Seq:      off / s.chunk,
			SrcPort:  s.srcPort,
			DstPort:  s.dstPort,
			Checksum: hash.Sum(payload),
			Payload:  payload,
		})
	}
	return Set{Segments: segments, SessionID: env.ID}
}

// Decapsulate reassembles the cipher stream in ascending sequence
// order, tolerating segments presented in any permutation. Checksums
// are recomputed per segment; a mismatch is reported as an
// IntegrityWarning and reassembly continues with the bytes as
// received.
func (s *Segmenter) Decapsulate(set Set) (session.Envelope, []protocol.IntegrityWarning) {
	ordered := make([]Segment, len(set.Segments))
	copy(ordered, set.Segments)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Seq < ordered[j].Seq })

	var warnings []protocol.IntegrityWarning
	total := 0
	for _, seg := range ordered {
		total += len(seg.Payload)
	}
	data := make([]byte, 0, total)
	for _, seg := range ordered {
		if sum := hash.Sum(seg.Payload); sum != seg.Checksum {
			warnings = append(warnings, protocol.IntegrityWarning{
				Seq:      seg.Seq,
				Expected: seg.Checksum,
				Actual:   sum,
			})
		}
		data = append(data, seg.Payload...)
	}

	return session.Envelope{
		ID: set.SessionID,
		Inner: obfs.Envelope{
			Cipher:   data,
			Codec:    s.codec,
			Mode:     s.mode,
			PlainLen: len(data),
		},
	}, warnings
}
