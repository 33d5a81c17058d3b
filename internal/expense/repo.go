package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) InsertExpense(ctx context.Context, e *Expense) error {
	e.ID = uuid.NewString()

	_, err := r.Pool.Exec(
		ctx,
		`INSERT INTO expenses (id, description, category, amount, date)
         VALUES ($1, $2, $3, $4, $5)`,
		e.ID,
		e.Description,
		e.Category,
		e.Amount,
		e.Date,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *Repository) ListExpenses(ctx context.Context) ([]Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, description, category, amount, date
		FROM expenses
		ORDER BY date DESC`)
}

// RecentExpenses returns at most limit expenses, newest first.
func (r *Repository) RecentExpenses(ctx context.Context, limit int) ([]Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, description, category, amount, date
		FROM expenses
		ORDER BY date DESC
		LIMIT $1`, limit)
}

func (r *Repository) queryExpenses(ctx context.Context, query string, args ...any) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(
			&e.ID,
			&e.Description,
			&e.Category,
			&e.Amount,
			&e.Date,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
