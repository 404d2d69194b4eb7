package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus workflow state of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

// Quote is an offer issued to a customer.
type Quote struct {
	ID          string
	CustomerID  string
	QuoteNumber string
	Title       string
	Status      QuoteStatus
	IssueDate   time.Time
	ValidUntil  *time.Time
	Total       decimal.Decimal
	CreatedAt   time.Time
}
