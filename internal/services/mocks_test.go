package services

import (
	"context"

	"minhasfinancas/internal/core"
)

// mockEntryStore counts interactions so tests can assert that failed
// operations never reach the store.
type mockEntryStore struct {
	createCalls int
	updateCalls int
	deleteCalls int
	searchCalls int
	sumCalls    int

	createFn func(e core.Entry) (core.Entry, error)
	updateFn func(e core.Entry) (core.Entry, error)
	deleteFn func(id int64) error
	findFn   func(id int64) (*core.Entry, error)
	searchFn func(f core.EntryFilter) ([]core.Entry, error)
	sumFn    func(userID int64, t core.EntryType, s core.EntryStatus) (int64, error)
}

func (m *mockEntryStore) Create(_ context.Context, e core.Entry) (core.Entry, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(e)
	}
	e.ID = 1
	return e, nil
}

func (m *mockEntryStore) Update(_ context.Context, e core.Entry) (core.Entry, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(e)
	}
	return e, nil
}

func (m *mockEntryStore) Delete(_ context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockEntryStore) FindByID(_ context.Context, id int64) (*core.Entry, error) {
	if m.findFn != nil {
		return m.findFn(id)
	}
	return nil, nil
}

func (m *mockEntryStore) Search(_ context.Context, f core.EntryFilter) ([]core.Entry, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(f)
	}
	return nil, nil
}

func (m *mockEntryStore) SumByUserTypeAndStatus(_ context.Context, userID int64, t core.EntryType, s core.EntryStatus) (int64, error) {
	m.sumCalls++
	if m.sumFn != nil {
		return m.sumFn(userID, t, s)
	}
	return 0, nil
}

type mockUserStore struct {
	createCalls int

	createFn func(u core.User) (core.User, error)
	byIDFn   func(id int64) (*core.User, error)
	byMailFn func(email string) (*core.User, error)
	existsFn func(email string) (bool, error)
}

func (m *mockUserStore) Create(_ context.Context, u core.User) (core.User, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(u)
	}
	u.ID = 1
	return u, nil
}

func (m *mockUserStore) FindByID(_ context.Context, id int64) (*core.User, error) {
	if m.byIDFn != nil {
		return m.byIDFn(id)
	}
	return nil, nil
}

func (m *mockUserStore) FindByEmail(_ context.Context, email string) (*core.User, error) {
	if m.byMailFn != nil {
		return m.byMailFn(email)
	}
	return nil, nil
}

func (m *mockUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(email)
	}
	return false, nil
}
