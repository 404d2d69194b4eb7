package postgres

import (
	"context"
	"fmt"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implements QuoteRepository (usable with pool or tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository builds the adapter.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// ListByCustomer returns the customer's quotes, newest first.
func (r *QuoteRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Quote, error) {
	query := `
		SELECT id, customer_id, quote_number, title, status, issue_date,
			valid_until, total, created_at
		FROM quotes WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.CustomerID, &q.QuoteNumber, &q.Title, &q.Status,
			&q.IssueDate, &q.ValidUntil, &q.Total, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Create persists a new quote.
func (r *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, customer_id, quote_number, title, status,
			issue_date, valid_until, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.CustomerID, q.QuoteNumber, q.Title, q.Status,
		q.IssueDate, q.ValidUntil, q.Total, q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}
