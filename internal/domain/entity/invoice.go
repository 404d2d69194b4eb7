package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus payment state of an invoice. PAID counts towards revenue;
// everything except PAID and CANCELLED counts as open.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusPartial   InvoiceStatus = "PARTIAL"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is a bill issued to a customer, optionally linked to a work order.
type Invoice struct {
	ID            string
	CustomerID    string
	OrderID       *string
	InvoiceNumber string
	Title         string
	Status        InvoiceStatus
	IssueDate     time.Time
	DueDate       *time.Time
	PaidDate      *time.Time
	Total         decimal.Decimal
	PaidAmount    *decimal.Decimal
	CreatedAt     time.Time
}
