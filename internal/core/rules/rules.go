// Package rules holds the field validation predicates shared by every form
// in the system: pure functions over a single string value, re-evaluated on
// each edit, with a tri-state result so untouched fields render neutrally.
package rules

import (
	"regexp"
	"strings"
)

// Result is the tri-state outcome of evaluating one field.
type Result int8

const (
	// Unset means the field has not been evaluated yet (untouched).
	Unset Result = iota
	Valid
	Invalid
)

func boolResult(ok bool) Result {
	if ok {
		return Valid
	}
	return Invalid
}

// Ok reports whether the result is Valid. Unset counts as not ok, which is
// what the submit-time aggregate needs for required fields.
func (r Result) Ok() bool { return r == Valid }

const (
	minNameLen     = 2
	minLoginIDLen  = 6
	maxLoginIDLen  = 12
	minPasswordLen = 8

	// passwordSymbols is the fixed punctuation set a password must draw
	// at least one character from.
	passwordSymbols = `!@#$%^&*(),.?":{}|<>`
)

// emailPattern accepts a permissive local@domain.tld shape: no whitespace
// or extra @ on either side, at least one dot after the @. Deliverability
// and uniqueness are not checked.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordPolicy names the complexity toggles. The two sign-up forms this
// replaces disagreed on the digit requirement, so it is configuration, not
// a constant.
type PasswordPolicy struct {
	MinLength     int
	RequireLower  bool
	RequireUpper  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy matches the majority form: length, case mix, and a
// symbol, but no digit.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     minPasswordLen,
		RequireLower:  true,
		RequireUpper:  true,
		RequireDigit:  false,
		RequireSymbol: true,
	}
}

// Name requires a display name of at least two characters. An empty string
// is invalid, not unset; the caller decides whether the field was touched.
func Name(s string) Result {
	return boolResult(len(s) >= minNameLen)
}

// LoginID requires 6 to 12 characters, boundaries inclusive.
func LoginID(s string) Result {
	return boolResult(len(s) >= minLoginIDLen && len(s) <= maxLoginIDLen)
}

// Email checks the permissive email shape.
func Email(s string) Result {
	return boolResult(emailPattern.MatchString(s))
}

// Password checks length and character-class requirements per the policy.
func Password(s string, policy PasswordPolicy) Result {
	if len(s) < policy.MinLength {
		return Invalid
	}
	if policy.RequireLower && !strings.ContainsFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return Invalid
	}
	if policy.RequireUpper && !strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return Invalid
	}
	if policy.RequireDigit && !strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return Invalid
	}
	if policy.RequireSymbol && !strings.ContainsAny(s, passwordSymbols) {
		return Invalid
	}
	return Valid
}

// ConfirmPassword is valid only when it matches the current password and is
// non-empty. It must be re-evaluated whenever either input changes.
func ConfirmPassword(password, confirm string) Result {
	return boolResult(confirm == password && len(confirm) > 0)
}
