package users

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository gives typed access to the users table.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps an open database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the user on first contact. Existing rows are left
// untouched: identity fields are first-write-wins and the test outcome
// never resets on re-contact.
func (r *Repository) Upsert(ctx context.Context, id int64, username, firstName, lastName string) error {
	const q = `
		INSERT INTO users (id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, q, id, username, firstName, lastName); err != nil {
		return fmt.Errorf("upsert user %d: %w", id, err)
	}
	return nil
}

// RecordResult stores the completed test outcome: result label,
// completion timestamp, and the raw comma-joined answer sequence are set
// together.
func (r *Repository) RecordResult(ctx context.Context, id int64, result, answers string) error {
	const q = `
		UPDATE users
		SET test_result = $1, test_completed_at = now(), answers = $2
		WHERE id = $3`
	res, err := r.db.ExecContext(ctx, q, result, answers, id)
	if err != nil {
		return fmt.Errorf("record result for %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("record result for %d: user not registered", id)
	}
	return nil
}

// AllIDs returns every known user identifier, for broadcast snapshots.
func (r *Repository) AllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

// Count returns the total number of registered users.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// RegisteredToday returns users whose first contact happened today,
// newest first.
func (r *Repository) RegisteredToday(ctx context.Context) ([]User, error) {
	const q = `
		SELECT id, username, first_name, last_name, registered_at,
		       test_result, test_completed_at, answers
		FROM users
		WHERE registered_at::date = CURRENT_DATE
		ORDER BY registered_at DESC`
	var list []User
	if err := r.db.SelectContext(ctx, &list, q); err != nil {
		return nil, fmt.Errorf("list today registrations: %w", err)
	}
	return list, nil
}
