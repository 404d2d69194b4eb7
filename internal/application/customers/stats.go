package customers

import (
	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

// computeStats derives the customer figures from its related rows:
//
//	orderCount   = all orders
//	activeOrders = orders in PLANNED or IN_PROGRESS
//	revenue      = sum of totals of PAID invoices
//	openInvoices = sum of totals of invoices neither PAID nor CANCELLED
func computeStats(orders []repository.OrderSummary, invoices []repository.InvoiceSummary) dto.CustomerStats {
	stats := dto.CustomerStats{OrderCount: len(orders)}
	for _, o := range orders {
		if o.Status == entity.OrderStatusPlanned || o.Status == entity.OrderStatusInProgress {
			stats.ActiveOrders++
		}
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			stats.Revenue = stats.Revenue.Add(inv.Total)
		case entity.InvoiceStatusCancelled:
			// cancelled invoices count nowhere
		default:
			stats.OpenInvoices = stats.OpenInvoices.Add(inv.Total)
		}
	}
	return stats
}
