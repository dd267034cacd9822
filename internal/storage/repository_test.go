package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"minhasfinancas/internal/core"
)

var entryCols = []string{
	"id", "descricao", "mes", "ano", "valor_cents", "tipo", "status", "data_cadastro",
	"u_id", "nome", "email", "senha",
}

func newMockRepo(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return newRepository(db), mock
}

func TestEntryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO lancamentos").
		WithArgs("Salario", 5, 2000, int64(1000), "RECEITA", "PENDENTE", int64(1), "2024-02-01").
		WillReturnResult(sqlmock.NewResult(7, 1))

	e := core.Entry{
		Description:  "Salario",
		Month:        5,
		Year:         2000,
		Amount:       core.Money{Cents: 1000},
		Type:         core.Income,
		Status:       core.StatusPending,
		User:         &core.User{ID: 1},
		RegisteredAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	saved, err := repo.Entries.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID != 7 {
		t.Fatalf("expected id 7, got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEntryUpdateMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE lancamentos").
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := core.Entry{
		ID:          99,
		Description: "Aluguel",
		Month:       3,
		Year:        2024,
		Amount:      core.Money{Cents: 500},
		Type:        core.Expense,
		Status:      core.StatusPending,
		User:        &core.User{ID: 1},
	}
	if _, err := repo.Entries.Update(context.Background(), e); err == nil {
		t.Fatal("expected error for update of missing row")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEntryFindByIDAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM lancamentos l").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(entryCols))

	e, err := repo.Entries.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for absent entry, got %+v", e)
	}
}

func TestEntrySearchBuildsPredicates(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.ano = ? AND l.id_usuario = ?")).
		WithArgs(2024, int64(1)).
		WillReturnRows(sqlmock.NewRows(entryCols).
			AddRow(1, "Salario", 2, 2024, 1000, "RECEITA", "PENDENTE", "2024-02-01",
				1, "usuario", "usuario@email.com", "123"))

	year := 2024
	userID := int64(1)
	entries, err := repo.Entries.Search(context.Background(), core.EntryFilter{
		Year:   &year,
		UserID: &userID,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Description != "Salario" || got.Amount.Cents != 1000 {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.User == nil || got.User.Email != "usuario@email.com" {
		t.Fatalf("expected joined user, got %+v", got.User)
	}
	if got.RegisteredAt.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("unexpected registration date %v", got.RegisteredAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEntrySearchWithoutFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	// No WHERE clause at all when every filter field is nil.
	mock.ExpectQuery(regexp.QuoteMeta("JOIN usuarios u ON u.id = l.id_usuario ORDER BY l.id")).
		WillReturnRows(sqlmock.NewRows(entryCols))

	entries, err := repo.Entries.Search(context.Background(), core.EntryFilter{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSumByUserTypeAndStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(valor_cents), 0) FROM lancamentos")).
		WithArgs(int64(1), "RECEITA", "EFETIVADO").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(6450)))

	total, err := repo.Entries.SumByUserTypeAndStatus(context.Background(), 1, core.Income, core.StatusConfirmed)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 6450 {
		t.Fatalf("expected 6450, got %d", total)
	}
}

func TestUserCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO usuarios").
		WithArgs("usuario", "usuario@email.com", "123").
		WillReturnResult(sqlmock.NewResult(1, 1))

	u, err := repo.Users.Create(context.Background(), core.User{
		Name:     "usuario",
		Email:    "usuario@email.com",
		Password: "123",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
}

func TestUserFindByEmailAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, nome, email, senha FROM usuarios WHERE email").
		WithArgs("ninguem@email.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "senha"}))

	u, err := repo.Users.FindByEmail(context.Background(), "ninguem@email.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for absent user, got %+v", u)
	}
}

func TestExistsByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM usuarios WHERE email = ?")).
		WithArgs("usuario@email.com").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	exists, err := repo.Users.ExistsByEmail(context.Background(), "usuario@email.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}
}
