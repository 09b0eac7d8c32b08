package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkamau/studentportal/internal/common"
)

// Login prompts for a registration number and password and tries to
// authenticate. On success the session is durable: the user stays logged in
// across restarts until they log out. The failure message never says whether
// the registration number or the password was wrong.
func (a *App) Login(ctx context.Context) error {
	regNumber, err := getSimpleText(a.reader, "Registration number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	if errs := validateLogin(regNumber, password); len(errs) > 0 {
		for _, field := range []string{"regNumber", "password"} {
			if msg, ok := errs[field]; ok {
				fmt.Fprintf(a.out, "%s: %s\n", field, msg)
			}
		}
		return nil
	}

	account, err := a.authService.Login(ctx, regNumber, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid registration number or password")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", account.Name)
	return nil
}

// Logout ends the current session. Running it while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
