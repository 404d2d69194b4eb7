package repository

import (
	"context"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceSummary is the slice of an invoice the customer stats need.
type InvoiceSummary struct {
	Status entity.InvoiceStatus
	Total  decimal.Decimal
}

// InvoiceRepository defines the persistence port for Invoice.
type InvoiceRepository interface {
	// SummariesByCustomerIDs returns status/total pairs of every given
	// customer's invoices, keyed by customer id.
	SummariesByCustomerIDs(ctx context.Context, customerIDs []string) (map[string][]InvoiceSummary, error)
	// ListByCustomer returns all invoices of a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error)
	// GetByID returns (nil, nil) when no invoice with that id exists.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
}
