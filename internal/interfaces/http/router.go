package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Customers CustomerService
	Invoices  InvoiceService
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Customers)
	// /stats before /:id, otherwise "stats" would match as an id.
	customers.Get("/stats", customerHandler.Stats)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Invoices)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/:id/send", invoiceHandler.Send)
}
