package dto

import (
	"time"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body for POST /api/customers. Server-assigned fields
// (id, timestamps) are not part of the schema; unknown input is dropped by
// decoding into this struct.
type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=PRIVATE BUSINESS"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Phone       *string `json:"phone"`
	Mobile      *string `json:"mobile"`
	Street      *string `json:"street"`
	PostalCode  *string `json:"postalCode"`
	City        *string `json:"city"`
	Country     string  `json:"country" validate:"required,oneof=CH DE AT LI"`
	Notes       *string `json:"notes"`
	Status      string  `json:"status" validate:"required,oneof=ACTIVE INACTIVE ARCHIVED"`
}

// UpdateCustomerRequest body for PATCH /api/customers/:id. Every field is
// optional; at least one must be present. omitnil (not omitempty) so a field
// given as "" is validated and rejected instead of silently accepted.
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Type        *string `json:"type" validate:"omitnil,oneof=PRIVATE BUSINESS"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Phone       *string `json:"phone"`
	Mobile      *string `json:"mobile"`
	Street      *string `json:"street"`
	PostalCode  *string `json:"postalCode"`
	City        *string `json:"city"`
	Country     *string `json:"country" validate:"omitnil,oneof=CH DE AT LI"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status" validate:"omitnil,oneof=ACTIVE INACTIVE ARCHIVED"`
}

// Empty reports whether the request carries no field at all.
func (r UpdateCustomerRequest) Empty() bool {
	return r.Name == nil && r.Type == nil && r.ContactName == nil &&
		r.Email == nil && r.Phone == nil && r.Mobile == nil &&
		r.Street == nil && r.PostalCode == nil && r.City == nil &&
		r.Country == nil && r.Notes == nil && r.Status == nil
}

// ListCustomersQuery query parameters for GET /api/customers.
type ListCustomersQuery struct {
	Page     int    `query:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"pageSize" json:"pageSize" validate:"omitempty,min=1,max=100"`
	Search   string `query:"search" json:"search"`
	Type     string `query:"type" json:"type" validate:"omitempty,oneof=PRIVATE BUSINESS"`
}

// Defaults applies the documented default page values for omitted fields.
func (q *ListCustomersQuery) Defaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
}

// CustomerStats derived aggregate figures attached to a customer at read
// time. Never persisted.
type CustomerStats struct {
	OrderCount   int             `json:"orderCount"`
	Revenue      decimal.Decimal `json:"revenue"`
	OpenInvoices decimal.Decimal `json:"openInvoices"`
	ActiveOrders int             `json:"activeOrders"`
}

// CustomerResponse customer in API responses.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	ContactName *string   `json:"contactName"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Mobile      *string   `json:"mobile"`
	Street      *string   `json:"street"`
	PostalCode  *string   `json:"postalCode"`
	City        *string   `json:"city"`
	Country     string    `json:"country"`
	Notes       *string   `json:"notes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CustomerListItem customer plus stats, one row of the paginated listing.
type CustomerListItem struct {
	CustomerResponse
	Stats CustomerStats `json:"stats"`
}

// ListCustomersResponse page envelope of GET /api/customers.
type ListCustomersResponse struct {
	Data []CustomerListItem `json:"data"`
	Meta PageMeta           `json:"meta"`
}

// CustomerStatusCounts response of GET /api/customers/stats. The four counts
// are independent queries; total is not guaranteed to equal the bucket sum
// under concurrent writes.
type CustomerStatusCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Archived int `json:"archived"`
	Total    int `json:"total"`
}

// CustomerDetailResponse customer with stats and full related collections.
type CustomerDetailResponse struct {
	CustomerListItem
	Orders   []OrderResponse   `json:"orders"`
	Quotes   []QuoteResponse   `json:"quotes"`
	Invoices []InvoiceResponse `json:"invoices"`
}

// NewCustomerResponse maps the entity onto the response schema.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Type:        string(c.Type),
		Name:        c.Name,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Mobile:      c.Mobile,
		Street:      c.Street,
		PostalCode:  c.PostalCode,
		City:        c.City,
		Country:     string(c.Country),
		Notes:       c.Notes,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
