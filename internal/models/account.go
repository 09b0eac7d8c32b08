// Package models defines the portal's durable record types. The JSON field
// names are an external contract: they match the layout the original web
// portal persisted under the "users" and "currentUser" keys, so a database
// written by either implementation is readable by the other.
package models

// Account is a registered student's identity record.
//
// Password is stored and compared as plaintext. That reproduces the original
// portal's behavior and keeps stored data compatible with it; any real
// deployment must replace this with a salted-hash comparison.
type Account struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	RegNumber string `json:"regNumber"`
	Password  string `json:"password"`
}

// SessionRecord returns the redacted projection of the account that is safe
// to persist as the current session: the password is always dropped, and
// email is kept only when includeEmail is set.
func (a Account) SessionRecord(includeEmail bool) SessionRecord {
	s := SessionRecord{
		Name:      a.Name,
		RegNumber: a.RegNumber,
	}
	if includeEmail {
		s.Email = a.Email
	}
	return s
}
