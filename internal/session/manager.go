// Package session owns the single current-session record of the portal.
// It never touches the account collection; it persists only the redacted
// projection of whoever logged in last.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkamau/studentportal/internal/common"
	"github.com/dkamau/studentportal/internal/logging"
	"github.com/dkamau/studentportal/internal/models"
	"github.com/dkamau/studentportal/internal/storage"
)

// Manager controls the logged-in/logged-out state.
//
// Contract:
//   - Start overwrites any existing session with the given account's
//     projection; logging in while logged in is legal.
//   - Current returns (nil, nil) when nobody is logged in; a corrupt session
//     record reads as logged out.
//   - End is idempotent; ending a non-existent session is not an error.
type Manager interface {
	Start(ctx context.Context, account models.Account) error
	Current(ctx context.Context) (*models.SessionRecord, error)
	End(ctx context.Context) error
}

// StoreManager persists the session under common.CurrentUserKey. The record
// has no TTL: it survives restarts until End removes it.
type StoreManager struct {
	store storage.Store
	log   logging.Logger

	// includeEmail selects the projection variant: the canonical portal
	// kept email in the session record, a later revision dropped it.
	includeEmail bool
}

func NewStoreManager(store storage.Store, log logging.Logger, includeEmail bool) *StoreManager {
	return &StoreManager{store: store, log: log.With("component", "session"), includeEmail: includeEmail}
}

func (m *StoreManager) Start(ctx context.Context, account models.Account) error {
	record := account.SessionRecord(m.includeEmail)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, common.CurrentUserKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (m *StoreManager) Current(ctx context.Context) (*models.SessionRecord, error) {
	data, err := m.store.Get(ctx, common.CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record models.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		m.log.Warn(ctx, "discarding corrupt session record", "key", common.CurrentUserKey, "error", err)
		return nil, nil
	}
	return &record, nil
}

func (m *StoreManager) End(ctx context.Context) error {
	if err := m.store.Delete(ctx, common.CurrentUserKey); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}
