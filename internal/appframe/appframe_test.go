package appframe

import (
	"fmt"
	"strings"
	"testing"
)

func TestEncapsulate(t *testing.T) {
	f := New("example.com", "/api/message")

	tests := []struct {
		name    string
		message string
	}{
		{name: "plain", message: "Hello, OSI Model!"},
		{name: "empty", message: ""},
		{name: "unicode", message: "héllo 世界"},
		{name: "contains delimiter", message: "a\r\n\r\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := f.Encapsulate(tt.message)

			if !strings.HasPrefix(env.Header, "POST /api/message HTTP/1.1\r\n") {
				t.Errorf("header = %q", env.Header)
			}
			if !strings.Contains(env.Header, "Host: example.com\r\n") {
				t.Errorf("header missing host: %q", env.Header)
			}
			want := fmt.Sprintf("Content-Length: %d\r\n", len(tt.message))
			if !strings.Contains(env.Header, want) {
				t.Errorf("header missing %q: %q", want, env.Header)
			}
			if !strings.HasSuffix(env.Header, "\r\n\r\n") {
				t.Errorf("header does not end with blank line: %q", env.Header)
			}
			if env.Payload != tt.message {
				t.Errorf("payload = %q, want %q", env.Payload, tt.message)
			}

			if got := f.Decapsulate(env); got != tt.message {
				t.Errorf("Decapsulate() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestContentLengthIsByteLength(t *testing.T) {
	f := New("example.com", "/api/message")
	env := f.Encapsulate("°C") // 2 runes, 3 bytes
	if !strings.Contains(env.Header, "Content-Length: 3\r\n") {
		t.Errorf("header = %q, want byte length 3", env.Header)
	}
}
