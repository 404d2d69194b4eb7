package dto

import (
	"time"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceResponse invoice inside a customer detail response.
type InvoiceResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	Title         string           `json:"title"`
	Status        string           `json:"status"`
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       *time.Time       `json:"dueDate"`
	PaidDate      *time.Time       `json:"paidDate"`
	Total         decimal.Decimal  `json:"total"`
	PaidAmount    *decimal.Decimal `json:"paidAmount"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// NewInvoiceResponse maps the entity onto the response schema.
func NewInvoiceResponse(i *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		Title:         i.Title,
		Status:        string(i.Status),
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		PaidDate:      i.PaidDate,
		Total:         i.Total,
		PaidAmount:    i.PaidAmount,
		CreatedAt:     i.CreatedAt,
	}
}

// InvoiceDetailResponse invoice with its customer, for GET /api/invoices/:id.
type InvoiceDetailResponse struct {
	InvoiceResponse
	OrderID  *string          `json:"orderId"`
	Customer CustomerResponse `json:"customer"`
}
