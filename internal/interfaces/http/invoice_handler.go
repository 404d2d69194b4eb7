package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
)

// InvoiceService is the surface of the invoice use case the HTTP layer
// depends on.
type InvoiceService interface {
	Get(ctx context.Context, id string) (*dto.InvoiceDetailResponse, error)
	DownloadPDF(ctx context.Context, id string) ([]byte, string, error)
	Send(ctx context.Context, id string) error
}

// InvoiceHandler handles the /api/invoices routes.
type InvoiceHandler struct {
	svc InvoiceService
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.svc.DownloadPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Send POST /api/invoices/:id/send, mails the PDF to the customer.
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	if err := h.svc.Send(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "sent"})
}
