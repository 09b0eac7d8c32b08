package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkamau/studentportal/internal/common"
	"github.com/dkamau/studentportal/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the signup form: full name, email,
// registration number, password and confirmation. Form-level validation runs
// first; only a clean form reaches the auth service. Conflicts are reported
// with the combined message the portal always used, without saying which
// field collided.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	regNumber, err := getSimpleText(a.reader, "Registration number (COM/B/01-XXXX or SIT/B/01-XXXX)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if errs := validateSignup(name, email, regNumber, password, confirm); len(errs) > 0 {
		for _, field := range []string{"name", "email", "regNumber", "password", "confirmPassword"} {
			if msg, ok := errs[field]; ok {
				fmt.Fprintf(a.out, "%s: %s\n", field, msg)
			}
		}
		return nil
	}

	account := models.Account{Name: name, Email: email, RegNumber: regNumber, Password: password}

	switch err := a.authService.Register(ctx, account); {
	case err == nil:
		fmt.Fprintln(a.out, "Account created successfully! You can now log in.")
	case errors.Is(err, common.ErrAlreadyExists):
		fmt.Fprintln(a.out, "Email or registration number already exists")
	case errors.Is(err, common.ErrInvalidRegNumber):
		fmt.Fprintln(a.out, "Registration number must start with COM/B/01- or SIT/B/01-")
	default:
		return err
	}
	return nil
}
