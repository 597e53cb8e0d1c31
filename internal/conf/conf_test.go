package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cipher.Mode != "xor" || cfg.Cipher.Codec != "text" {
		t.Errorf("cipher defaults = %s/%s, want xor/text", cfg.Cipher.Mode, cfg.Cipher.Codec)
	}
	if cfg.Cipher.KeyByte != 42 {
		t.Errorf("key byte = %d, want 42", cfg.Cipher.KeyByte)
	}
	if cfg.Session.TokenLength != 16 {
		t.Errorf("token length = %d, want 16", cfg.Session.TokenLength)
	}
	if cfg.Transport.ChunkSize != 10 || cfg.Transport.SrcPort != 8080 || cfg.Transport.DstPort != 443 {
		t.Errorf("transport defaults = %+v", cfg.Transport)
	}
	if cfg.Network.SrcIP.String() != "192.168.1.2" || cfg.Network.DstIP.String() != "192.168.1.10" {
		t.Errorf("network defaults = %s→%s", cfg.Network.SrcIP, cfg.Network.DstIP)
	}
	if cfg.Network.TTL != 64 {
		t.Errorf("ttl = %d, want 64", cfg.Network.TTL)
	}
	if cfg.Link.SrcMAC == nil || cfg.Link.DstMAC == nil {
		t.Errorf("link MACs not parsed: %+v", cfg.Link)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	yml := `
log:
  level: debug
cipher:
  mode: xor
  codec: cbor
  key: 7
transport:
  chunk_size: 4
  src_port: 1234
  dst_port: 5678
network:
  src_ip: 10.0.0.1
  dst_ip: 10.0.0.2
  ttl: 32
link:
  src_mac: "02:00:00:00:00:01"
  dst_mac: "02:00:00:00:00:02"
session:
  token_length: 24
`
	path := filepath.Join(t.TempDir(), "conf.yml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cipher.KeyByte != 7 {
		t.Errorf("key byte = %d, want 7", cfg.Cipher.KeyByte)
	}
	if cfg.Cipher.Codec != "cbor" {
		t.Errorf("codec = %q, want cbor", cfg.Cipher.Codec)
	}
	if cfg.Transport.ChunkSize != 4 {
		t.Errorf("chunk size = %d, want 4", cfg.Transport.ChunkSize)
	}
	if cfg.Network.TTL != 32 {
		t.Errorf("ttl = %d, want 32", cfg.Network.TTL)
	}
	if cfg.Session.TokenLength != 24 {
		t.Errorf("token length = %d, want 24", cfg.Session.TokenLength)
	}
	if cfg.Link.SrcMAC.String() != "02:00:00:00:00:01" {
		t.Errorf("src mac = %s", cfg.Link.SrcMAC)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mangle func(*Conf)
		want   string
	}{
		{
			name:   "bad cipher mode",
			mangle: func(c *Conf) { c.Cipher.Mode = "aes" },
			want:   "cipher mode",
		},
		{
			name:   "bad codec",
			mangle: func(c *Conf) { c.Cipher.Codec = "xml" },
			want:   "cipher codec",
		},
		{
			name:   "key out of range",
			mangle: func(c *Conf) { c.Cipher.Key = 300 },
			want:   "cipher key",
		},
		{
			name:   "negative chunk",
			mangle: func(c *Conf) { c.Transport.ChunkSize = -1 },
			want:   "chunk_size",
		},
		{
			name:   "bad src ip",
			mangle: func(c *Conf) { c.Network.SrcIP_ = "not-an-ip" },
			want:   "src_ip",
		},
		{
			name:   "bad dst mac",
			mangle: func(c *Conf) { c.Link.DstMAC_ = "zz:zz" },
			want:   "dst_mac",
		},
		{
			name:   "bad log level",
			mangle: func(c *Conf) { c.Log.Level = "verbose" },
			want:   "log level",
		},
		{
			name:   "token length out of range",
			mangle: func(c *Conf) { c.Session.TokenLength = -3 },
			want:   "token_length",
		},
		{
			name:   "port out of range",
			mangle: func(c *Conf) { c.Transport.SrcPort = 70000 },
			want:   "src_port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Conf
			cfg.setDefaults()
			tt.mangle(&cfg)
			err := cfg.validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestPassphraseDerivation(t *testing.T) {
	var a, b Conf
	a.Cipher.Passphrase = "correct horse battery staple"
	b.Cipher.Passphrase = "correct horse battery staple"
	a.setDefaults()
	b.setDefaults()
	if err := a.validate(); err != nil {
		t.Fatal(err)
	}
	if err := b.validate(); err != nil {
		t.Fatal(err)
	}
	if a.Cipher.KeyByte != b.Cipher.KeyByte {
		t.Errorf("derivation not deterministic: %d vs %d", a.Cipher.KeyByte, b.Cipher.KeyByte)
	}

	var c Conf
	c.Cipher.Passphrase = "a different passphrase"
	c.Cipher.Salt = "different salt"
	c.setDefaults()
	if err := c.validate(); err != nil {
		t.Fatal(err)
	}
}
