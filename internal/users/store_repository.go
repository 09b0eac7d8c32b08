package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkamau/studentportal/internal/common"
	"github.com/dkamau/studentportal/internal/logging"
	"github.com/dkamau/studentportal/internal/models"
	"github.com/dkamau/studentportal/internal/storage"
)

// StoreRepository keeps the whole account collection as one JSON array under
// common.UsersKey, read-modify-written on every Add. When the injected store
// supports storage.Atomic, the read-modify-write runs in one transaction so
// concurrent registrations in the same process cannot lose each other's
// writes. Separate processes sharing the database file still race; that
// mirrors the original portal's localStorage behavior.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log.With("component", "users")}
}

// decode unmarshals the stored collection. A missing value reads as an empty
// collection; a corrupt one is logged and also reads as empty rather than
// failing the caller.
func (r *StoreRepository) decode(ctx context.Context, data []byte) []models.Account {
	if len(data) == 0 {
		return nil
	}
	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.log.Warn(ctx, "discarding corrupt account collection", "key", common.UsersKey, "error", err)
		return nil
	}
	return accounts
}

func (r *StoreRepository) list(ctx context.Context, s storage.Store) ([]models.Account, error) {
	data, err := s.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return r.decode(ctx, data), nil
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, r.store)
}

func (r *StoreRepository) add(ctx context.Context, s storage.Store, account models.Account) error {
	accounts, err := r.list(ctx, s)
	if err != nil {
		return err
	}

	for _, existing := range accounts {
		if existing.RegNumber == account.RegNumber || existing.Email == account.Email {
			return common.ErrAlreadyExists
		}
	}

	accounts = append(accounts, account)

	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.Set(ctx, common.UsersKey, data); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (r *StoreRepository) Add(ctx context.Context, account models.Account) error {
	if atomic, ok := r.store.(storage.Atomic); ok {
		return atomic.Atomically(ctx, func(ctx context.Context, s storage.Store) error {
			return r.add(ctx, s, account)
		})
	}
	return r.add(ctx, r.store, account)
}

// Find scans the collection for an exact registration number and password
// match. Comparison is case-sensitive and verbatim; see models.Account for
// the plaintext-password caveat.
func (r *StoreRepository) Find(ctx context.Context, regNumber, password string) (*models.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.RegNumber == regNumber && account.Password == password {
			return &account, nil
		}
	}
	return nil, common.ErrNotFound
}
