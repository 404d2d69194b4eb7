package invoices

import (
	"context"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
)

// PDFGenerator renders the printable representation of an invoice.
type PDFGenerator interface {
	RenderInvoice(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

// Mailer delivers a message with a single attachment over SMTP.
type Mailer interface {
	Send(to, subject, body, attachmentName string, attachment []byte) error
}
