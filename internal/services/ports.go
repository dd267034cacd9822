package services

import (
	"context"

	"minhasfinancas/internal/core"
)

// EntryStore is the persistence boundary for financial entries. The
// SQLite implementation lives in internal/storage; tests supply mocks.
type EntryStore interface {
	Create(ctx context.Context, e core.Entry) (core.Entry, error)
	Update(ctx context.Context, e core.Entry) (core.Entry, error)
	Delete(ctx context.Context, id int64) error

	// FindByID returns (nil, nil) when no entry has the given id.
	FindByID(ctx context.Context, id int64) (*core.Entry, error)
	Search(ctx context.Context, f core.EntryFilter) ([]core.Entry, error)

	// SumByUserTypeAndStatus returns the total cents of all entries of
	// the user with the given type and status, zero when none match.
	SumByUserTypeAndStatus(ctx context.Context, userID int64, t core.EntryType, s core.EntryStatus) (int64, error)
}

// UserStore is the persistence boundary for user records.
type UserStore interface {
	Create(ctx context.Context, u core.User) (core.User, error)

	// FindByID and FindByEmail return (nil, nil) when absent.
	FindByID(ctx context.Context, id int64) (*core.User, error)
	FindByEmail(ctx context.Context, email string) (*core.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
