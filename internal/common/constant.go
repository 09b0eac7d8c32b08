// Package common contains shared constants and sentinel errors used across
// portal components.
package common

const (
	// UsersKey is the durable-store key holding the JSON array of all
	// registered accounts.
	UsersKey = "users"

	// CurrentUserKey is the durable-store key holding the JSON session
	// record of the logged-in student, absent when nobody is logged in.
	CurrentUserKey = "currentUser"
)
