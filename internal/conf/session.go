package conf

import "fmt"

// Session configures the session-layer token.
type Session struct {
	// TokenLength is the token size in characters.
	TokenLength int `yaml:"token_length"`
}

func (s *Session) setDefaults() {
	if s.TokenLength == 0 {
		s.TokenLength = 16
	}
}

func (s *Session) validate() []error {
	var errors []error

	if s.TokenLength < 1 || s.TokenLength > 128 {
		errors = append(errors, fmt.Errorf("session token_length must be between 1 and 128"))
	}

	return errors
}
