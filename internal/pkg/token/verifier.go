// Package token decides whether a presented session token is acceptable.
package token

import "crypto/subtle"

// Verifier checks a session token presented by a client
type Verifier interface {
	Verify(token string) bool
}

// VerifierFunc adapts a plain function to Verifier
type VerifierFunc func(token string) bool

func (f VerifierFunc) Verify(token string) bool {
	return f(token)
}

// StaticVerifier accepts only the tokens in its allow-list
type StaticVerifier struct {
	allowed []string
}

// NewStaticVerifier creates a verifier whose allow-list holds exactly the given tokens.
// Empty tokens are never allowed.
func NewStaticVerifier(tokens ...string) *StaticVerifier {
	allowed := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			allowed = append(allowed, t)
		}
	}
	return &StaticVerifier{allowed: allowed}
}

// Verify reports whether token is in the allow-list
func (v *StaticVerifier) Verify(token string) bool {
	if token == "" {
		return false
	}
	for _, allowed := range v.allowed {
		if subtle.ConstantTimeCompare([]byte(token), []byte(allowed)) == 1 {
			return true
		}
	}
	return false
}
