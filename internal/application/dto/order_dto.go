package dto

import (
	"time"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderResponse work order inside a customer detail response.
type OrderResponse struct {
	ID            string           `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	Title         string           `json:"title"`
	Status        string           `json:"status"`
	Priority      string           `json:"priority"`
	StartDate     *time.Time       `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	Deadline      *time.Time       `json:"deadline"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
	ActualCost    *decimal.Decimal `json:"actualCost"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// NewOrderResponse maps the entity onto the response schema.
func NewOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Title:         o.Title,
		Status:        string(o.Status),
		Priority:      string(o.Priority),
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		Deadline:      o.Deadline,
		EstimatedCost: o.EstimatedCost,
		ActualCost:    o.ActualCost,
		CreatedAt:     o.CreatedAt,
	}
}

// QuoteResponse quote inside a customer detail response.
type QuoteResponse struct {
	ID          string          `json:"id"`
	QuoteNumber string          `json:"quoteNumber"`
	Title       string          `json:"title"`
	Status      string          `json:"status"`
	IssueDate   time.Time       `json:"issueDate"`
	ValidUntil  *time.Time      `json:"validUntil"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewQuoteResponse maps the entity onto the response schema.
func NewQuoteResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Title:       q.Title,
		Status:      string(q.Status),
		IssueDate:   q.IssueDate,
		ValidUntil:  q.ValidUntil,
		Total:       q.Total,
		CreatedAt:   q.CreatedAt,
	}
}
