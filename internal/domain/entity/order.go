package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus workflow state of a work order.
type OrderStatus string

const (
	OrderStatusPlanned    OrderStatus = "PLANNED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReview     OrderStatus = "REVIEW"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Priority scheduling priority of a work order.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Order is a work order owned by a customer.
type Order struct {
	ID            string
	CustomerID    string
	OrderNumber   string
	Title         string
	Status        OrderStatus
	Priority      Priority
	StartDate     *time.Time
	EndDate       *time.Time
	Deadline      *time.Time
	EstimatedCost *decimal.Decimal
	ActualCost    *decimal.Decimal
	CreatedAt     time.Time
}
