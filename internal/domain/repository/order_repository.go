package repository

import (
	"context"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
)

// OrderSummary is the slice of an order the customer stats need.
type OrderSummary struct {
	Status entity.OrderStatus
}

// OrderRepository defines the persistence port for Order.
type OrderRepository interface {
	// SummariesByCustomerIDs returns the order statuses of every given
	// customer, keyed by customer id. Customers without orders are absent
	// from the map.
	SummariesByCustomerIDs(ctx context.Context, customerIDs []string) (map[string][]OrderSummary, error)
	// ListByCustomer returns all orders of a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
}
