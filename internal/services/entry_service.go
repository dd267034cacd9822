package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"minhasfinancas/internal/core"
)

// EntryService orchestrates validation and persistence of entries.
type EntryService struct {
	store EntryStore
}

func NewEntryService(store EntryStore) *EntryService {
	return &EntryService{store: store}
}

// Save validates and persists a new entry. The store is never touched
// when validation fails. Status defaults to PENDENTE and the
// registration date to now when unset.
func (s *EntryService) Save(ctx context.Context, e core.Entry) (core.Entry, error) {
	if e.Status == "" {
		e.Status = core.StatusPending
	}
	if e.RegisteredAt.IsZero() {
		e.RegisteredAt = time.Now()
	}

	if err := e.Validate(); err != nil {
		return core.Entry{}, err
	}

	saved, err := s.store.Create(ctx, e)
	if err != nil {
		return core.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	slog.InfoContext(ctx, "Entry saved",
		"id", saved.ID,
		"description", saved.Description,
		"amount_cents", saved.Amount.Cents,
		"type", saved.Type,
		"status", saved.Status)

	return saved, nil
}

// Update persists changes to an already stored entry. Calling it with
// an entry that never got an identifier is caller misuse and fails
// before validation or any store access.
func (s *EntryService) Update(ctx context.Context, e core.Entry) (core.Entry, error) {
	if e.ID == 0 {
		return core.Entry{}, core.ErrEntryNotPersisted
	}
	if err := e.Validate(); err != nil {
		return core.Entry{}, err
	}

	updated, err := s.store.Update(ctx, e)
	if err != nil {
		return core.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	slog.InfoContext(ctx, "Entry updated", "id", updated.ID, "status", updated.Status)
	return updated, nil
}

// Delete removes a stored entry. Same identifier precondition as Update.
func (s *EntryService) Delete(ctx context.Context, e core.Entry) error {
	if e.ID == 0 {
		return core.ErrEntryNotPersisted
	}
	if err := s.store.Delete(ctx, e.ID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	slog.InfoContext(ctx, "Entry deleted", "id", e.ID)
	return nil
}

// ChangeStatus sets the new status and delegates to Update, inheriting
// its identifier precondition and validation. Any status may move to
// any other; the state machine is deliberately permissive.
func (s *EntryService) ChangeStatus(ctx context.Context, e core.Entry, status core.EntryStatus) (core.Entry, error) {
	e.Status = status
	return s.Update(ctx, e)
}

// FindByID returns the entry, or (nil, nil) when it does not exist.
func (s *EntryService) FindByID(ctx context.Context, id int64) (*core.Entry, error) {
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return e, nil
}

// Search returns all entries matching the populated fields of the filter.
func (s *EntryService) Search(ctx context.Context, f core.EntryFilter) ([]core.Entry, error) {
	entries, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return entries, nil
}

// BalanceForUser computes confirmed income minus confirmed expense for
// the user. A user with no confirmed entries has a zero balance, never
// an absent one.
func (s *EntryService) BalanceForUser(ctx context.Context, userID int64) (core.Money, error) {
	income, err := s.store.SumByUserTypeAndStatus(ctx, userID, core.Income, core.StatusConfirmed)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum income: %w", err)
	}
	expense, err := s.store.SumByUserTypeAndStatus(ctx, userID, core.Expense, core.StatusConfirmed)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum expense: %w", err)
	}
	return core.Money{Cents: income - expense}, nil
}
