package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"minhasfinancas/internal/core"
)

// UserRepository persists user records in the usuarios table. Email
// uniqueness is backed by the unique index; the service still checks
// first so the duplicate surfaces as a business-rule error.
type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) Create(ctx context.Context, u core.User) (core.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios (nome, email, senha) VALUES (?, ?, ?)`,
		u.Name, u.Email, u.Password,
	)
	if err != nil {
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.User{}, fmt.Errorf("user insert id: %w", err)
	}
	u.ID = id

	slog.InfoContext(ctx, "User stored", "id", u.ID, "email", u.Email)
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*core.User, error) {
	return r.findOne(ctx, `SELECT id, nome, email, senha FROM usuarios WHERE id = ?`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*core.User, error) {
	return r.findOne(ctx, `SELECT id, nome, email, senha FROM usuarios WHERE email = ?`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM usuarios WHERE email = ?`, email,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return n > 0, nil
}
