package cli

import (
	"context"
	"fmt"
)

// Dashboard renders the landing view: who is logged in and where to go next.
func (a *App) Dashboard(ctx context.Context) error {
	current, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register' first.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", current.Name)
	fmt.Fprintf(a.out, "Registration number: %s\n", current.RegNumber)
	if current.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", current.Email)
	}
	fmt.Fprintln(a.out, "Available views: timetable, results")
	return nil
}
