package repository

import (
	"context"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
)

// CustomerFilter is the filter predicate for customer listings. The same
// value must be passed to Count and List so the reported total always
// reflects the returned page.
type CustomerFilter struct {
	// Search is a case-insensitive substring match on the customer name.
	Search string
	// Type restricts to one customer type; empty means no restriction.
	Type entity.CustomerType
}

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	// List returns one page ordered by status ascending, then name ascending.
	List(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	Count(ctx context.Context, filter CustomerFilter) (int, error)
	// GetByID returns (nil, nil) when no customer with that id exists.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	// Update reports whether a row was actually written; false means the
	// customer vanished since it was read.
	Update(ctx context.Context, customer *entity.Customer) (bool, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context, status entity.CustomerStatus) (int, error)
	CountAll(ctx context.Context) (int, error)
}
