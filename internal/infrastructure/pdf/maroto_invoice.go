// Package pdf renders the printable invoice using Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: company name          │  invoice no. + dates    │
//	│  ───────────────────────────────────────────────────────│
//	│  BILL TO: customer name + address + contact              │
//	│  ───────────────────────────────────────────────────────│
//	│  POSITION: title / linked order                          │
//	│  TOTALS: total / paid / outstanding (CHF, de-CH format)  │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/handwerkpro/handwerkpro-api/internal/application/invoices"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	appconfig "github.com/handwerkpro/handwerkpro-api/pkg/config"
)

var _ invoices.PDFGenerator = (*MarotoInvoiceGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// chf formats amounts with Swiss grouping (1'234.50).
var chf = message.NewPrinter(language.MustParse("de-CH"))

func amount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return chf.Sprintf("CHF %.2f", f)
}

func date(t time.Time) string {
	return t.Format("02.01.2006")
}

// MarotoInvoiceGenerator renders invoices for the configured company.
type MarotoInvoiceGenerator struct {
	company appconfig.CompanyConfig
}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator(company appconfig.CompanyConfig) *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{company: company}
}

// RenderInvoice generates the PDF and returns its bytes.
func (g *MarotoInvoiceGenerator) RenderInvoice(_ context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Rechnung %s", invoice.InvoiceNumber), true).
		WithAuthor(g.company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(invoice)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.customerRows(customer)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.positionRows(invoice)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoInvoiceGenerator) headerRows(invoice *entity.Invoice) []core.Row {
	dueDate := "-"
	if invoice.DueDate != nil {
		dueDate = date(*invoice.DueDate)
	}
	return []core.Row{
		row.New(10).Add(
			text.NewCol(6, g.company.Name, props.Text{
				Size: 16, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.NewCol(6, fmt.Sprintf("Rechnung %s", invoice.InvoiceNumber), props.Text{
				Size: 12, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
		row.New(6).Add(
			text.NewCol(6, g.company.Street+", "+g.company.City, props.Text{
				Size: 9, Color: colorGray,
			}),
			text.NewCol(6, fmt.Sprintf("Rechnungsdatum: %s", date(invoice.IssueDate)), props.Text{
				Size: 9, Align: align.Right,
			}),
		),
		row.New(6).Add(
			text.NewCol(6, g.company.Phone+"  ·  "+g.company.Email, props.Text{
				Size: 9, Color: colorGray,
			}),
			text.NewCol(6, fmt.Sprintf("Zahlbar bis: %s", dueDate), props.Text{
				Size: 9, Align: align.Right,
			}),
		),
	}
}

func (g *MarotoInvoiceGenerator) customerRows(customer *entity.Customer) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			text.NewCol(12, "Rechnungsadresse", props.Text{
				Size: 9, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		row.New(5).Add(
			text.NewCol(12, customer.Name, props.Text{Size: 10, Style: fontstyle.Bold}),
		),
	}
	if customer.ContactName != nil {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, *customer.ContactName, props.Text{Size: 9}),
		))
	}
	if customer.Street != nil {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, *customer.Street, props.Text{Size: 9}),
		))
	}
	if customer.PostalCode != nil && customer.City != nil {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, fmt.Sprintf("%s %s, %s", *customer.PostalCode, *customer.City, customer.Country), props.Text{Size: 9}),
		))
	}
	return rows
}

func (g *MarotoInvoiceGenerator) positionRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			text.NewCol(9, invoice.Title, props.Text{Size: 10}),
			text.NewCol(3, amount(invoice.Total), props.Text{Size: 10, Align: align.Right}),
		),
	}
	if invoice.OrderID != nil {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, fmt.Sprintf("Auftrag: %s", *invoice.OrderID), props.Text{
				Size: 8, Color: colorGray,
			}),
		))
	}
	return rows
}

func (g *MarotoInvoiceGenerator) totalRows(invoice *entity.Invoice) []core.Row {
	paid := decimal.Zero
	if invoice.PaidAmount != nil {
		paid = *invoice.PaidAmount
	}
	return []core.Row{
		row.New(7).Add(
			text.NewCol(9, "Rechnungsbetrag", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(3, amount(invoice.Total), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
		row.New(6).Add(
			text.NewCol(9, "Bereits bezahlt", props.Text{Size: 9, Color: colorGray}),
			text.NewCol(3, amount(paid), props.Text{Size: 9, Align: align.Right, Color: colorGray}),
		),
		row.New(7).Add(
			text.NewCol(9, "Offener Betrag", props.Text{Size: 11, Style: fontstyle.Bold, Color: colorPrimary}),
			text.NewCol(3, amount(invoice.Total.Sub(paid)), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	}
}
