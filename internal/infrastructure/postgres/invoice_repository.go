package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, customer_id, order_id, invoice_number, title, status,
	issue_date, due_date, paid_date, total, paid_amount, created_at`

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// SummariesByCustomerIDs loads status and total of a whole customer page's
// invoices in one query.
func (r *InvoiceRepo) SummariesByCustomerIDs(ctx context.Context, customerIDs []string) (map[string][]repository.InvoiceSummary, error) {
	rows, err := r.q.Query(ctx,
		`SELECT customer_id, status, total FROM invoices WHERE customer_id = ANY($1)`,
		customerIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("invoice summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]repository.InvoiceSummary, len(customerIDs))
	for rows.Next() {
		var customerID string
		var s repository.InvoiceSummary
		if err := rows.Scan(&customerID, &s.Status, &s.Total); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		out[customerID] = append(out[customerID], s)
	}
	return out, rows.Err()
}

// ListByCustomer returns the customer's invoices, newest first.
func (r *InvoiceRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM invoices WHERE customer_id = $1 ORDER BY created_at DESC`,
		invoiceColumns,
	)
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByID returns the invoice or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id = $1`, invoiceColumns)
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Create persists a new invoice.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, order_id, invoice_number, title,
			status, issue_date, due_date, paid_date, total, paid_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CustomerID, inv.OrderID, inv.InvoiceNumber, inv.Title,
		inv.Status, inv.IssueDate, inv.DueDate, inv.PaidDate, inv.Total,
		inv.PaidAmount, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.OrderID, &inv.InvoiceNumber, &inv.Title,
		&inv.Status, &inv.IssueDate, &inv.DueDate, &inv.PaidDate, &inv.Total,
		&inv.PaidAmount, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
