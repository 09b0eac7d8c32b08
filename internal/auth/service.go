package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkamau/studentportal/internal/common"
	"github.com/dkamau/studentportal/internal/models"
	"github.com/dkamau/studentportal/internal/session"
	"github.com/dkamau/studentportal/internal/users"
)

// Service defines the authentication operations exposed to the presentation
// layer.
//
// Contract:
//   - Register validates the registration-number format and creates the
//     account; it does not start a session. Errors: common.ErrInvalidRegNumber,
//     common.ErrAlreadyExists.
//   - Login verifies credentials and, on success, starts (or overwrites) the
//     session. Unknown registration number and wrong password surface the
//     same common.ErrInvalidCredentials.
//   - CurrentUser returns (nil, nil) when nobody is logged in; callers use it
//     to guard protected views.
//   - Logout is idempotent.
type Service interface {
	Register(ctx context.Context, account models.Account) error
	Login(ctx context.Context, regNumber, password string) (*models.Account, error)
	CurrentUser(ctx context.Context) (*models.SessionRecord, error)
	Logout(ctx context.Context) error
}

type service struct {
	repo     users.Repository
	sessions session.Manager
}

// NewService constructs the auth service over the given account repository
// and session manager.
func NewService(repo users.Repository, sessions session.Manager) Service {
	return &service{repo: repo, sessions: sessions}
}

func (s *service) Register(ctx context.Context, account models.Account) error {
	if !IsValidRegNumber(account.RegNumber) {
		return common.ErrInvalidRegNumber
	}

	if err := s.repo.Add(ctx, account); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

func (s *service) Login(ctx context.Context, regNumber, password string) (*models.Account, error) {
	account, err := s.repo.Find(ctx, regNumber, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error verifying credentials: %w", err)
	}

	if err := s.sessions.Start(ctx, *account); err != nil {
		return nil, fmt.Errorf("error starting session: %w", err)
	}

	return account, nil
}

func (s *service) CurrentUser(ctx context.Context) (*models.SessionRecord, error) {
	return s.sessions.Current(ctx)
}

func (s *service) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}
