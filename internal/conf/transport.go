package conf

import "fmt"

// Transport configures segmentation.
type Transport struct {
	// ChunkSize is the maximum payload bytes per segment.
	ChunkSize int `yaml:"chunk_size"`
	SrcPort   int `yaml:"src_port"`
	DstPort   int `yaml:"dst_port"`
}

func (t *Transport) setDefaults() {
	if t.ChunkSize == 0 {
		t.ChunkSize = 10
	}
	if t.SrcPort == 0 {
		t.SrcPort = 8080
	}
	if t.DstPort == 0 {
		t.DstPort = 443
	}
}

func (t *Transport) validate() []error {
	var errors []error

	if t.ChunkSize < 1 {
		errors = append(errors, fmt.Errorf("transport chunk_size must be positive"))
	}
	if t.SrcPort < 1 || t.SrcPort > 65535 {
		errors = append(errors, fmt.Errorf("transport src_port must be between 1 and 65535"))
	}
	if t.DstPort < 1 || t.DstPort > 65535 {
		errors = append(errors, fmt.Errorf("transport dst_port must be between 1 and 65535"))
	}

	return errors
}
