package conf

import (
	"fmt"
	"net"
)

// Network configures network-layer addressing.
type Network struct {
	SrcIP_ string `yaml:"src_ip"`
	DstIP_ string `yaml:"dst_ip"`
	TTL    int    `yaml:"ttl"`

	SrcIP net.IP `yaml:"-"`
	DstIP net.IP `yaml:"-"`
}

func (n *Network) setDefaults() {
	if n.SrcIP_ == "" {
		n.SrcIP_ = "192.168.1.2"
	}
	if n.DstIP_ == "" {
		n.DstIP_ = "192.168.1.10"
	}
	if n.TTL == 0 {
		n.TTL = 64
	}
}

func (n *Network) validate() []error {
	var errors []error

	if n.SrcIP = net.ParseIP(n.SrcIP_); n.SrcIP == nil {
		errors = append(errors, fmt.Errorf("network src_ip %q is not a valid IP address", n.SrcIP_))
	}
	if n.DstIP = net.ParseIP(n.DstIP_); n.DstIP == nil {
		errors = append(errors, fmt.Errorf("network dst_ip %q is not a valid IP address", n.DstIP_))
	}
	if n.TTL < 1 || n.TTL > 255 {
		errors = append(errors, fmt.Errorf("network ttl must be between 1 and 255"))
	}

	return errors
}
