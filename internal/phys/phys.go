// Package phys implements the physical layer: conversion of each
// frame's payload bytes to a textual bit string and back.
package phys

import (
	"fmt"
	"strings"

	"stratum/internal/link"
	"stratum/internal/protocol"
)

// BinaryFrame carries the original frame as opaque metadata next to
// the bit-string rendering of its payload. BitLen is always eight
// times the payload byte length.
type BinaryFrame struct {
	Frame  link.Frame
	Bits   string
	BitLen int
}

// BinarySet is the physical layer's output, one binary frame per
// frame in unchanged order.
type BinarySet struct {
	Frames    []BinaryFrame
	SessionID string
}

// TotalBits sums the bit lengths across all frames.
func (s BinarySet) TotalBits() int {
	total := 0
	for _, f := range s.Frames {
		total += f.BitLen
	}
	return total
}

type Codec struct{}

// New creates the bit-string codec.
func New() *Codec {
	return &Codec{}
}

// Encapsulate converts each frame's payload to its bit string.
func (c *Codec) Encapsulate(set link.FrameSet) BinarySet {
	frames := make([]BinaryFrame, len(set.Frames))
	for i, frm := range set.Frames {
		bits := BytesToBits(frm.Packet.Segment.Payload)
		frames[i] = BinaryFrame{Frame: frm, Bits: bits, BitLen: len(bits)}
	}
	return BinarySet{Frames: frames, SessionID: set.SessionID}
}

// Decapsulate converts each bit string back to payload bytes and
// reconstructs the frame with its metadata intact. Returns
// protocol.ErrProtocol for bit strings that are not well formed.
func (c *Codec) Decapsulate(set BinarySet) (link.FrameSet, error) {
	frames := make([]link.Frame, len(set.Frames))
	for i, bf := range set.Frames {
		if bf.BitLen != len(bf.Bits) {
			return link.FrameSet{}, fmt.Errorf("%w: frame %d declares %d bits but carries %d", protocol.ErrProtocol, i, bf.BitLen, len(bf.Bits))
		}
		payload, err := BitsToBytes(bf.Bits)
		if err != nil {
			return link.FrameSet{}, fmt.Errorf("frame %d: %w", i, err)
		}
		frm := bf.Frame
		frm.Packet.Segment.Payload = payload
		frames[i] = frm
	}
	return link.FrameSet{Frames: frames, SessionID: set.SessionID}, nil
}

// BytesToBits renders data as a '0'/'1' string, most significant bit
// first, eight bits per byte.
func BytesToBits(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, by := range data {
		for i := 7; i >= 0; i-- {
			if by&(1<<uint(i)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// BitsToBytes regroups a bit string into bytes, reversing
// BytesToBits. The length must be a multiple of eight and every
// character must be '0' or '1'; anything else is protocol.ErrProtocol.
func BitsToBytes(bits string) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%w: bit length %d is not a multiple of 8", protocol.ErrProtocol, len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			out[i/8] |= 1 << uint(7-i%8)
		case '0':
		default:
			return nil, fmt.Errorf("%w: invalid bit character %q", protocol.ErrProtocol, bits[i])
		}
	}
	return out, nil
}
