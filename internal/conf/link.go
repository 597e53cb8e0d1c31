package conf

import (
	"fmt"
	"net"
)

// Link configures data-link-layer addressing.
type Link struct {
	SrcMAC_ string `yaml:"src_mac"`
	DstMAC_ string `yaml:"dst_mac"`

	SrcMAC net.HardwareAddr `yaml:"-"`
	DstMAC net.HardwareAddr `yaml:"-"`
}

func (l *Link) setDefaults() {
	if l.SrcMAC_ == "" {
		l.SrcMAC_ = "AA:BB:CC:DD:EE:01"
	}
	if l.DstMAC_ == "" {
		l.DstMAC_ = "AA:BB:CC:DD:EE:02"
	}
}

func (l *Link) validate() []error {
	var errors []error

	var err error
	if l.SrcMAC, err = net.ParseMAC(l.SrcMAC_); err != nil {
		errors = append(errors, fmt.Errorf("link src_mac %q is not a valid MAC address", l.SrcMAC_))
	}
	if l.DstMAC, err = net.ParseMAC(l.DstMAC_); err != nil {
		errors = append(errors, fmt.Errorf("link dst_mac %q is not a valid MAC address", l.DstMAC_))
	}

	return errors
}
