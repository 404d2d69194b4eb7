// Package customers implements the customer aggregation service: paginated
// listing with derived stats, detail reads with full relation data, status
// bucket counts and the create/update/delete lifecycle.
package customers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/internal/domain"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
	"github.com/handwerkpro/handwerkpro-api/pkg/validation"
)

// UseCase composes the persistence ports into the customer operations.
// It does not retry; apart from translating the not-found signal every
// persistence failure propagates to the HTTP error mapper unchanged.
type UseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	quotes    repository.QuoteRepository
	invoices  repository.InvoiceRepository
}

// NewUseCase builds the service.
func NewUseCase(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	quotes repository.QuoteRepository,
	invoices repository.InvoiceRepository,
) *UseCase {
	return &UseCase{
		customers: customers,
		orders:    orders,
		quotes:    quotes,
		invoices:  invoices,
	}
}

// ListAll returns one page of customers, each annotated with derived stats,
// plus pagination metadata. Count and page query share one filter value so
// the total always reflects the returned page.
func (uc *UseCase) ListAll(ctx context.Context, q dto.ListCustomersQuery) (*dto.ListCustomersResponse, error) {
	q.Defaults()

	filter := repository.CustomerFilter{
		Search: q.Search,
		Type:   entity.CustomerType(q.Type),
	}

	total, err := uc.customers.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	offset := (q.Page - 1) * q.PageSize
	list, err := uc.customers.List(ctx, filter, q.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}

	var (
		ordersByCustomer   map[string][]repository.OrderSummary
		invoicesByCustomer map[string][]repository.InvoiceSummary
	)
	if len(ids) > 0 {
		if ordersByCustomer, err = uc.orders.SummariesByCustomerIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("load order summaries: %w", err)
		}
		if invoicesByCustomer, err = uc.invoices.SummariesByCustomerIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("load invoice summaries: %w", err)
		}
	}

	data := make([]dto.CustomerListItem, 0, len(list))
	for _, c := range list {
		data = append(data, dto.CustomerListItem{
			CustomerResponse: dto.NewCustomerResponse(c),
			Stats:            computeStats(ordersByCustomer[c.ID], invoicesByCustomer[c.ID]),
		})
	}

	return &dto.ListCustomersResponse{
		Data: data,
		Meta: dto.PageMeta{
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      total,
			TotalPages: (total + q.PageSize - 1) / q.PageSize,
		},
	}, nil
}

// ListOne returns a single customer with its full order/quote/invoice
// collections (newest first) and the same stats as the listing, derived here
// from the complete relation data.
func (uc *UseCase) ListOne(ctx context.Context, id string) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}

	orders, err := uc.orders.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	quotes, err := uc.quotes.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	invoices, err := uc.invoices.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load invoices: %w", err)
	}

	orderSummaries := make([]repository.OrderSummary, 0, len(orders))
	orderResponses := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		orderSummaries = append(orderSummaries, repository.OrderSummary{Status: o.Status})
		orderResponses = append(orderResponses, dto.NewOrderResponse(o))
	}
	invoiceSummaries := make([]repository.InvoiceSummary, 0, len(invoices))
	invoiceResponses := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		invoiceSummaries = append(invoiceSummaries, repository.InvoiceSummary{Status: i.Status, Total: i.Total})
		invoiceResponses = append(invoiceResponses, dto.NewInvoiceResponse(i))
	}
	quoteResponses := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		quoteResponses = append(quoteResponses, dto.NewQuoteResponse(q))
	}

	return &dto.CustomerDetailResponse{
		CustomerListItem: dto.CustomerListItem{
			CustomerResponse: dto.NewCustomerResponse(customer),
			Stats:            computeStats(orderSummaries, invoiceSummaries),
		},
		Orders:   orderResponses,
		Quotes:   quoteResponses,
		Invoices: invoiceResponses,
	}, nil
}

// GetStats counts customers per status plus a grand total. The four counts
// are independent queries without a wrapping transaction; a write racing
// between them can skew total against the bucket sum, which is accepted.
func (uc *UseCase) GetStats(ctx context.Context) (*dto.CustomerStatusCounts, error) {
	active, err := uc.customers.CountByStatus(ctx, entity.CustomerStatusActive)
	if err != nil {
		return nil, fmt.Errorf("count active customers: %w", err)
	}
	inactive, err := uc.customers.CountByStatus(ctx, entity.CustomerStatusInactive)
	if err != nil {
		return nil, fmt.Errorf("count inactive customers: %w", err)
	}
	archived, err := uc.customers.CountByStatus(ctx, entity.CustomerStatusArchived)
	if err != nil {
		return nil, fmt.Errorf("count archived customers: %w", err)
	}
	total, err := uc.customers.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return &dto.CustomerStatusCounts{
		Active:   active,
		Inactive: inactive,
		Archived: archived,
		Total:    total,
	}, nil
}

// Create persists a new customer with a server-assigned id and timestamps.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Type:        entity.CustomerType(in.Type),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Mobile:      in.Mobile,
		Street:      in.Street,
		PostalCode:  in.PostalCode,
		City:        in.City,
		Country:     entity.Country(in.Country),
		Notes:       in.Notes,
		Status:      entity.CustomerStatus(in.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	out := dto.NewCustomerResponse(customer)
	return &out, nil
}

// Update applies a partial update: the current row is loaded, the present
// fields are overlaid and the row is written back. A request without any
// field is rejected before touching persistence.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Empty() {
		return nil, validation.NewError("Mindestens ein Feld muss aktualisiert werden", nil)
	}

	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Type != nil {
		customer.Type = entity.CustomerType(*in.Type)
	}
	if in.ContactName != nil {
		customer.ContactName = in.ContactName
	}
	if in.Email != nil {
		customer.Email = in.Email
	}
	if in.Phone != nil {
		customer.Phone = in.Phone
	}
	if in.Mobile != nil {
		customer.Mobile = in.Mobile
	}
	if in.Street != nil {
		customer.Street = in.Street
	}
	if in.PostalCode != nil {
		customer.PostalCode = in.PostalCode
	}
	if in.City != nil {
		customer.City = in.City
	}
	if in.Country != nil {
		customer.Country = entity.Country(*in.Country)
	}
	if in.Notes != nil {
		customer.Notes = in.Notes
	}
	if in.Status != nil {
		customer.Status = entity.CustomerStatus(*in.Status)
	}
	customer.UpdatedAt = time.Now().UTC()

	updated, err := uc.customers.Update(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if !updated {
		// Deleted between the read and the write.
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	out := dto.NewCustomerResponse(customer)
	return &out, nil
}

// Delete removes the customer row for good. Dependent orders, quotes and
// invoices go with it via the schema's cascade rules.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.customers.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if !deleted {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
