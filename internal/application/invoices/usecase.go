// Package invoices covers the invoice read side: detail lookup, the PDF
// rendition and mailing the PDF to the customer.
package invoices

import (
	"context"
	"fmt"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/internal/domain"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

// UseCase invoice read operations.
type UseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	generator PDFGenerator
	mailer    Mailer
}

// NewUseCase builds the use case. mailer may be nil when no SMTP host is
// configured; Send then fails with a domain error instead of dialing.
func NewUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	generator PDFGenerator,
	mailer Mailer,
) *UseCase {
	return &UseCase{
		invoices:  invoices,
		customers: customers,
		generator: generator,
		mailer:    mailer,
	}
}

// load fetches the invoice and its customer, translating absence into the
// domain not-found error.
func (uc *UseCase) load(ctx context.Context, id string) (*entity.Invoice, *entity.Customer, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice == nil {
		return nil, nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	customer, err := uc.customers.GetByID(ctx, invoice.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("get invoice customer: %w", err)
	}
	if customer == nil {
		return nil, nil, fmt.Errorf("customer %s of invoice %s: %w", invoice.CustomerID, id, domain.ErrNotFound)
	}
	return invoice, customer, nil
}

// Get returns the invoice together with its customer.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InvoiceDetailResponse, error) {
	invoice, customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceDetailResponse{
		InvoiceResponse: dto.NewInvoiceResponse(invoice),
		OrderID:         invoice.OrderID,
		Customer:        dto.NewCustomerResponse(customer),
	}, nil
}

// DownloadPDF renders the invoice PDF and returns its bytes plus a file name
// for the Content-Disposition header.
func (uc *UseCase) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	invoice, customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.RenderInvoice(ctx, invoice, customer)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice pdf: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", invoice.InvoiceNumber), nil
}

// Send renders the invoice PDF and mails it to the customer. The customer
// must have an e-mail address on file, and SMTP must be configured.
func (uc *UseCase) Send(ctx context.Context, id string) error {
	invoice, customer, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if uc.mailer == nil {
		return fmt.Errorf("%w: mail delivery is not configured", domain.ErrConflict)
	}
	if customer.Email == nil || *customer.Email == "" {
		return fmt.Errorf("%w: customer %s has no email address", domain.ErrInvalidInput, customer.ID)
	}

	pdf, err := uc.generator.RenderInvoice(ctx, invoice, customer)
	if err != nil {
		return fmt.Errorf("render invoice pdf: %w", err)
	}

	subject := fmt.Sprintf("Rechnung %s - %s", invoice.InvoiceNumber, invoice.Title)
	body := fmt.Sprintf(
		"Guten Tag %s\n\nIm Anhang finden Sie die Rechnung %s.\n\nFreundliche Grüsse\nIhr HandwerkPro-Team\n",
		customer.Name, invoice.InvoiceNumber,
	)
	if err := uc.mailer.Send(*customer.Email, subject, body, fmt.Sprintf("%s.pdf", invoice.InvoiceNumber), pdf); err != nil {
		return fmt.Errorf("send invoice mail: %w", err)
	}
	return nil
}
