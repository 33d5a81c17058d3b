package income

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

func (r *Repository) InsertBill(ctx context.Context, b *Bill) error {
	b.ID = uuid.NewString()

	_, err := r.Pool.Exec(
		ctx,
		`INSERT INTO income_bills (id, category, customer_name, line_items, total_amount, date, description)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID,
		b.Category,
		b.CustomerName,
		b.LineItems,
		b.TotalAmount,
		b.Date,
		b.Description,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (r *Repository) ListBills(ctx context.Context) ([]Bill, error) {
	return r.queryBills(ctx, `
		SELECT id, category, customer_name, line_items, total_amount, date, description
		FROM income_bills
		ORDER BY date DESC`)
}

// RecentBills returns at most limit bills, newest first.
func (r *Repository) RecentBills(ctx context.Context, limit int) ([]Bill, error) {
	return r.queryBills(ctx, `
		SELECT id, category, customer_name, line_items, total_amount, date, description
		FROM income_bills
		ORDER BY date DESC
		LIMIT $1`, limit)
}

func (r *Repository) queryBills(ctx context.Context, query string, args ...any) ([]Bill, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	defer rows.Close()

	out := make([]Bill, 0)
	for rows.Next() {
		var b Bill
		if err := rows.Scan(
			&b.ID,
			&b.Category,
			&b.CustomerName,
			&b.LineItems,
			&b.TotalAmount,
			&b.Date,
			&b.Description,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		if b.LineItems == nil {
			b.LineItems = []LineItem{}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
