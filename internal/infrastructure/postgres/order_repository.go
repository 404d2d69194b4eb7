package postgres

import (
	"context"
	"fmt"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// SummariesByCustomerIDs loads the order statuses of a whole customer page
// in one query.
func (r *OrderRepo) SummariesByCustomerIDs(ctx context.Context, customerIDs []string) (map[string][]repository.OrderSummary, error) {
	rows, err := r.q.Query(ctx,
		`SELECT customer_id, status FROM orders WHERE customer_id = ANY($1)`,
		customerIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("order summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]repository.OrderSummary, len(customerIDs))
	for rows.Next() {
		var customerID string
		var s repository.OrderSummary
		if err := rows.Scan(&customerID, &s.Status); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		out[customerID] = append(out[customerID], s)
	}
	return out, rows.Err()
}

// ListByCustomer returns the customer's orders, newest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_number, title, status, priority,
			start_date, end_date, deadline, estimated_cost, actual_cost, created_at
		FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.OrderNumber, &o.Title, &o.Status, &o.Priority,
			&o.StartDate, &o.EndDate, &o.Deadline, &o.EstimatedCost, &o.ActualCost, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Create persists a new order.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, order_number, title, status, priority,
			start_date, end_date, deadline, estimated_cost, actual_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CustomerID, o.OrderNumber, o.Title, o.Status, o.Priority,
		o.StartDate, o.EndDate, o.Deadline, o.EstimatedCost, o.ActualCost, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
