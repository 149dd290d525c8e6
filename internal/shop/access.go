package shop

import (
	"errors"
	"strings"
)

// DefaultAccessCode is the fallback management code used until the
// operator sets their own. The gate is presentation-level protection
// for a single shared code, not security-grade authentication: the
// code lives in the same weakly-protected store as the shop data.
const DefaultAccessCode = "atelier2026"

// Access-code change failures. Each maps to an inline form message;
// none of them mutate state.
var (
	ErrWrongCode    = errors.New("current code does not match")
	ErrCodeTooShort = errors.New("new code must be at least 4 characters")
	ErrCodeMismatch = errors.New("new code and confirmation differ")
	ErrNotSaved     = errors.New("code could not be saved")
)

// AccessCode returns the stored management code, or the default when
// none is stored or the stored value is blank.
func (s *Shop) AccessCode() string {
	var code string
	if s.st.Load(keyAccessCode, &code) && strings.TrimSpace(code) != "" {
		return code
	}
	return DefaultAccessCode
}

// SetAccessCode replaces the management code after validating the
// current code, the minimum length, and the confirmation.
func (s *Shop) SetAccessCode(current, next, confirm string) error {
	current = strings.TrimSpace(current)
	next = strings.TrimSpace(next)
	confirm = strings.TrimSpace(confirm)

	switch {
	case current != s.AccessCode():
		return ErrWrongCode
	case len(next) < 4:
		return ErrCodeTooShort
	case next != confirm:
		return ErrCodeMismatch
	}
	if !s.st.Save(keyAccessCode, next) {
		return ErrNotSaved
	}
	return nil
}

// Unlocked reports whether a management session is active.
func (s *Shop) Unlocked() bool {
	var flag bool
	s.st.Load(keySession, &flag)
	return flag
}

// Login unlocks the management surface when code matches. A wrong code
// leaves the gate locked and is never persisted anywhere.
func (s *Shop) Login(code string) bool {
	if strings.TrimSpace(code) != s.AccessCode() {
		return false
	}
	return s.st.Save(keySession, true)
}

// Logout clears the management session.
func (s *Shop) Logout() {
	s.st.Remove(keySession)
}
