// Package auth is the portal's authentication service: registration-number
// format validation, account registration, credential verification and
// session establishment/teardown.
package auth

import "strings"

// Accepted registration-number prefixes. The institution issues numbers only
// for these two programmes.
const (
	RegNumberPrefixCOM = "COM/B/01-"
	RegNumberPrefixSIT = "SIT/B/01-"
)

// IsValidRegNumber reports whether s carries one of the accepted prefixes.
// Pure predicate; it gates both form-level validation and registration.
func IsValidRegNumber(s string) bool {
	return strings.HasPrefix(s, RegNumberPrefixCOM) || strings.HasPrefix(s, RegNumberPrefixSIT)
}
