package models

// SessionRecord is the currently-logged-in identity: an Account with the
// password dropped. At most one exists at any time; it is the sole authority
// for "is anyone logged in".
type SessionRecord struct {
	Name      string `json:"name"`
	RegNumber string `json:"regNumber"`
	Email     string `json:"email,omitempty"`
}
