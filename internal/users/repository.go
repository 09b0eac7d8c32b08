// Package users stores the collection of registered accounts under a single
// key of the durable store and enforces its uniqueness rules.
package users

import (
	"context"

	"github.com/dkamau/studentportal/internal/models"
)

// Repository owns the registered-account collection.
//
// Contract:
//   - List returns accounts in registration order; an absent or corrupt
//     collection reads as empty, never as an error.
//   - Add fails with common.ErrAlreadyExists when any existing account shares
//     the candidate's registration number or email.
//   - Find returns common.ErrNotFound when no account matches both the
//     registration number and the password exactly.
type Repository interface {
	List(ctx context.Context) ([]models.Account, error)
	Add(ctx context.Context, account models.Account) error
	Find(ctx context.Context, regNumber, password string) (*models.Account, error)
}
