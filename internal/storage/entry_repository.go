package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"minhasfinancas/internal/core"
)

// EntryRepository persists entries in the lancamentos table. Rows are
// always read joined with their owning user.
type EntryRepository struct {
	db *sql.DB
}

const entryColumns = `l.id, l.descricao, l.mes, l.ano, l.valor_cents, l.tipo, l.status, l.data_cadastro,
	u.id, u.nome, u.email, u.senha`

const entryBaseQuery = `SELECT ` + entryColumns + `
	FROM lancamentos l
	JOIN usuarios u ON u.id = l.id_usuario`

func scanEntry(row interface{ Scan(...any) error }) (core.Entry, error) {
	var (
		e    core.Entry
		u    core.User
		date string
	)
	err := row.Scan(
		&e.ID, &e.Description, &e.Month, &e.Year, &e.Amount.Cents, &e.Type, &e.Status, &date,
		&u.ID, &u.Name, &u.Email, &u.Password,
	)
	if err != nil {
		return core.Entry{}, err
	}
	if t, perr := time.Parse(dateLayout, date); perr == nil {
		e.RegisteredAt = t
	}
	e.User = &u
	return e, nil
}

func (r *EntryRepository) Create(ctx context.Context, e core.Entry) (core.Entry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO lancamentos (descricao, mes, ano, valor_cents, tipo, status, id_usuario, data_cadastro)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Description, e.Month, e.Year, e.Amount.Cents, string(e.Type), string(e.Status), e.User.ID,
		e.RegisteredAt.Format(dateLayout),
	)
	if err != nil {
		return core.Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Entry{}, fmt.Errorf("entry insert id: %w", err)
	}
	e.ID = id

	slog.InfoContext(ctx, "Entry stored",
		"id", e.ID,
		"description", e.Description,
		"amount_cents", e.Amount.Cents,
		"month", e.Month,
		"year", e.Year)

	return e, nil
}

func (r *EntryRepository) Update(ctx context.Context, e core.Entry) (core.Entry, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE lancamentos
		 SET descricao = ?, mes = ?, ano = ?, valor_cents = ?, tipo = ?, status = ?, id_usuario = ?
		 WHERE id = ?`,
		e.Description, e.Month, e.Year, e.Amount.Cents, string(e.Type), string(e.Status), e.User.ID, e.ID,
	)
	if err != nil {
		return core.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return core.Entry{}, fmt.Errorf("update entry rows: %w", err)
	}
	if affected == 0 {
		return core.Entry{}, fmt.Errorf("update entry: no row with id %d", e.ID)
	}

	return e, nil
}

func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lancamentos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id int64) (*core.Entry, error) {
	row := r.db.QueryRowContext(ctx, entryBaseQuery+` WHERE l.id = ?`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find entry by id: %w", err)
	}
	return &e, nil
}

// Search builds a WHERE clause from the populated fields of the filter.
// Each populated field constrains with exact equality; nil fields are
// left unconstrained.
func (r *EntryRepository) Search(ctx context.Context, f core.EntryFilter) ([]core.Entry, error) {
	var (
		conds []string
		args  []any
	)
	if f.Description != nil {
		conds = append(conds, "l.descricao = ?")
		args = append(args, *f.Description)
	}
	if f.Month != nil {
		conds = append(conds, "l.mes = ?")
		args = append(args, *f.Month)
	}
	if f.Year != nil {
		conds = append(conds, "l.ano = ?")
		args = append(args, *f.Year)
	}
	if f.Type != nil {
		conds = append(conds, "l.tipo = ?")
		args = append(args, string(*f.Type))
	}
	if f.Status != nil {
		conds = append(conds, "l.status = ?")
		args = append(args, string(*f.Status))
	}
	if f.UserID != nil {
		conds = append(conds, "l.id_usuario = ?")
		args = append(args, *f.UserID)
	}

	query := entryBaseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY l.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search entries rows: %w", err)
	}

	return entries, nil
}

func (r *EntryRepository) SumByUserTypeAndStatus(ctx context.Context, userID int64, t core.EntryType, s core.EntryStatus) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(valor_cents), 0) FROM lancamentos
		 WHERE id_usuario = ? AND tipo = ? AND status = ?`,
		userID, string(t), string(s),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum entries: %w", err)
	}
	return total, nil
}
