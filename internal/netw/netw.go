// Package netw implements the network layer: a pure metadata wrapper
// attaching constant IP addressing to each segment. Payload bytes are
// never touched.
package netw

import (
	"fmt"
	"net"

	"github.com/gopacket/gopacket/layers"

	"stratum/internal/protocol"
	"stratum/internal/segment"
)

// Packet wraps one segment with network addressing.
type Packet struct {
	SrcIP    net.IP
	DstIP    net.IP
	TTL      uint8
	Protocol layers.IPProtocol
	Segment  segment.Segment
}

// PacketSet is the network layer's output, one packet per segment in
// unchanged order.
type PacketSet struct {
	Packets   []Packet
	SessionID string
}

// Total returns the packet count.
func (s PacketSet) Total() int { return len(s.Packets) }

type Addresser struct {
	src   net.IP
	dst   net.IP
	ttl   uint8
	proto layers.IPProtocol
}

// New creates an addresser stamping the given constant addressing
// onto every packet.
func New(src, dst net.IP, ttl uint8) *Addresser {
	return &Addresser{src: src, dst: dst, ttl: ttl, proto: layers.IPProtocolTCP}
}

// Encapsulate wraps each segment, preserving order and count.
func (a *Addresser) Encapsulate(set segment.Set) PacketSet {
	packets := make([]Packet, len(set.Segments))
	for i, seg := range set.Segments {
		packets[i] = Packet{
			SrcIP:    a.src,
			DstIP:    a.dst,
			TTL:      a.ttl,
			Protocol: a.proto,
			Segment:  seg,
		}
	}
	return PacketSet{Packets: packets, SessionID: set.SessionID}
}

// Decapsulate strips the wrappers, preserving order and count. A
// packet with no inner segment is a malformed envelope.
func (a *Addresser) Decapsulate(set PacketSet) (segment.Set, error) {
	segments := make([]segment.Segment, len(set.Packets))
	for i, pkt := range set.Packets {
		if pkt.Segment.Payload == nil && pkt.Segment.Checksum == "" {
			return segment.Set{}, fmt.Errorf("%w: packet %d carries no segment", protocol.ErrProtocol, i)
		}
		segments[i] = pkt.Segment
	}
	return segment.Set{Segments: segments, SessionID: set.SessionID}, nil
}
