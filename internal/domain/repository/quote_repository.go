package repository

import (
	"context"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
)

// QuoteRepository defines the persistence port for Quote.
type QuoteRepository interface {
	// ListByCustomer returns all quotes of a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Quote, error)
	Create(ctx context.Context, quote *entity.Quote) error
}
