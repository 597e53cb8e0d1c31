// Package appframe implements the application layer: it wraps the
// raw message text in an HTTP-POST-style request envelope.
package appframe

import "fmt"

// Envelope pairs the protocol header with the message payload. The
// header is informational: it is derived from the payload and never
// needs to survive the wire on its own.
type Envelope struct {
	Header  string
	Payload string
}

type Framer struct {
	host string
	path string
}

// New creates a framer describing payloads as plain-text POSTs to the
// given host and path.
func New(host, path string) *Framer {
	return &Framer{host: host, path: path}
}

// Encapsulate wraps message in a request envelope. It never fails,
// including for the empty message.
func (f *Framer) Encapsulate(message string) Envelope {
	header := fmt.Sprintf(
		"POST %s HTTP/1.1\r\nHost: %s\r\nContent-Type: text/plain\r\nContent-Length: %d\r\n\r\n",
		f.path, f.host, len(message))
	return Envelope{Header: header, Payload: message}
}

// Decapsulate returns the payload verbatim. This is the exact inverse
// of Encapsulate for any payload text, including text containing the
// header delimiter sequence, because the payload is carried as a
// distinct field and never re-split.
func (f *Framer) Decapsulate(env Envelope) string {
	return env.Payload
}
