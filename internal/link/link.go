// Package link implements the data-link layer: a pure metadata
// wrapper attaching constant MAC addressing to each packet.
package link

import (
	"fmt"
	"net"

	"github.com/gopacket/gopacket/layers"

	"stratum/internal/netw"
	"stratum/internal/protocol"
)

// Frame wraps one packet with link addressing.
type Frame struct {
	SrcMAC    net.HardwareAddr
	DstMAC    net.HardwareAddr
	EtherType layers.EthernetType
	Packet    netw.Packet
}

// FrameSet is the data-link layer's output, one frame per packet in
// unchanged order.
type FrameSet struct {
	Frames    []Frame
	SessionID string
}

// Total returns the frame count.
func (s FrameSet) Total() int { return len(s.Frames) }

type Addresser struct {
	src net.HardwareAddr
	dst net.HardwareAddr
}

// New creates an addresser stamping the given constant MAC addresses
// onto every frame. Frames carry EtherType IPv4 (0x0800).
func New(src, dst net.HardwareAddr) *Addresser {
	return &Addresser{src: src, dst: dst}
}

// Encapsulate wraps each packet, preserving order and count.
func (a *Addresser) Encapsulate(set netw.PacketSet) FrameSet {
	frames := make([]Frame, len(set.Packets))
	for i, pkt := range set.Packets {
		frames[i] = Frame{
			SrcMAC:    a.src,
			DstMAC:    a.dst,
			EtherType: layers.EthernetTypeIPv4,
			Packet:    pkt,
		}
	}
	return FrameSet{Frames: frames, SessionID: set.SessionID}
}

// Decapsulate strips the wrappers, preserving order and count. A
// frame with no inner packet is a malformed envelope.
func (a *Addresser) Decapsulate(set FrameSet) (netw.PacketSet, error) {
	packets := make([]netw.Packet, len(set.Frames))
	for i, frm := range set.Frames {
		if frm.Packet.SrcIP == nil && frm.Packet.DstIP == nil {
			return netw.PacketSet{}, fmt.Errorf("%w: frame %d carries no packet", protocol.ErrProtocol, i)
		}
		packets[i] = frm.Packet
	}
	return netw.PacketSet{Packets: packets, SessionID: set.SessionID}, nil
}
