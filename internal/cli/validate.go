package cli

import (
	"regexp"
	"strings"

	"github.com/dkamau/studentportal/internal/auth"
)

// emailRe is the advisory local@domain shape check the signup form applies.
// It is a form-level hint, not an RFC validator.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// minPasswordLen is enforced here at the form boundary. The core accepts any
// password; the policy belongs to the presentation layer.
const minPasswordLen = 6

// validateSignup applies the signup form's field checks and returns
// field-level messages, empty when everything passes.
func validateSignup(name, email, regNumber, password, confirm string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(email):
		errs["email"] = "Please enter a valid email"
	}

	switch {
	case strings.TrimSpace(regNumber) == "":
		errs["regNumber"] = "Registration number is required"
	case !auth.IsValidRegNumber(regNumber):
		errs["regNumber"] = "Registration number must start with COM/B/01- or SIT/B/01-"
	}

	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < minPasswordLen:
		errs["password"] = "Password must be at least 6 characters"
	}

	switch {
	case confirm == "":
		errs["confirmPassword"] = "Please confirm your password"
	case password != confirm:
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

// validateLogin applies the login form's required-field checks.
func validateLogin(regNumber, password string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(regNumber) == "" {
		errs["regNumber"] = "Registration number is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}

	return errs
}
