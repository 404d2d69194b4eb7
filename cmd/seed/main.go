// Command seed fills the database with a small demo dataset. It is meant
// for local development and wipes nothing; rerunning it adds duplicates.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/infrastructure/postgres"
	"github.com/handwerkpro/handwerkpro-api/pkg/config"
	"github.com/handwerkpro/handwerkpro-api/pkg/logger"
)

func ptr[T any](v T) *T { return &v }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply schema")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	now := time.Now().UTC()

	mueller := &entity.Customer{
		ID:          uuid.New().String(),
		Type:        entity.CustomerTypeBusiness,
		Name:        "Müller Sanitär GmbH",
		ContactName: ptr("Thomas Müller"),
		Email:       ptr("info@mueller-sanitaer.ch"),
		Phone:       ptr("+41 44 123 45 67"),
		Street:      ptr("Industriestrasse 12"),
		PostalCode:  ptr("8304"),
		City:        ptr("Wallisellen"),
		Country:     entity.CountryCH,
		Status:      entity.CustomerStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	weber := &entity.Customer{
		ID:         uuid.New().String(),
		Type:       entity.CustomerTypePrivate,
		Name:       "Sandra Weber",
		Email:      ptr("sandra.weber@example.com"),
		Mobile:     ptr("+41 79 555 12 34"),
		Street:     ptr("Bergweg 3"),
		PostalCode: ptr("6003"),
		City:       ptr("Luzern"),
		Country:    entity.CountryCH,
		Notes:      ptr("Bevorzugt Termine am Vormittag."),
		Status:     entity.CustomerStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	keller := &entity.Customer{
		ID:        uuid.New().String(),
		Type:      entity.CustomerTypeBusiness,
		Name:      "Keller Immobilien AG",
		Email:     ptr("verwaltung@keller-immo.ch"),
		Country:   entity.CountryCH,
		Status:    entity.CustomerStatusInactive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, c := range []*entity.Customer{mueller, weber, keller} {
		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("seed customer")
		}
	}

	orders := []*entity.Order{
		{
			ID:            uuid.New().String(),
			CustomerID:    mueller.ID,
			OrderNumber:   "A-2026-001",
			Title:         "Badsanierung EG",
			Status:        entity.OrderStatusInProgress,
			Priority:      entity.PriorityHigh,
			StartDate:     ptr(now.AddDate(0, 0, -14)),
			Deadline:      ptr(now.AddDate(0, 1, 0)),
			EstimatedCost: ptr(decimal.NewFromInt(18500)),
			CreatedAt:     now,
		},
		{
			ID:          uuid.New().String(),
			CustomerID:  mueller.ID,
			OrderNumber: "A-2026-002",
			Title:       "Heizungswartung",
			Status:      entity.OrderStatusPlanned,
			Priority:    entity.PriorityNormal,
			Deadline:    ptr(now.AddDate(0, 2, 0)),
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			CustomerID:  weber.ID,
			OrderNumber: "A-2026-003",
			Title:       "Parkett schleifen",
			Status:      entity.OrderStatusReview,
			Priority:    entity.PriorityLow,
			StartDate:   ptr(now.AddDate(0, 0, -21)),
			EndDate:     ptr(now.AddDate(0, 0, -2)),
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			CustomerID:  keller.ID,
			OrderNumber: "A-2026-004",
			Title:       "Fassadenreinigung",
			Status:      entity.OrderStatusCancelled,
			Priority:    entity.PriorityUrgent,
			CreatedAt:   now,
		},
		{
			ID:            uuid.New().String(),
			CustomerID:    weber.ID,
			OrderNumber:   "A-2026-005",
			Title:         "Küchenumbau",
			Status:        entity.OrderStatusCompleted,
			Priority:      entity.PriorityNormal,
			StartDate:     ptr(now.AddDate(0, -3, 0)),
			EndDate:       ptr(now.AddDate(0, -1, 0)),
			EstimatedCost: ptr(decimal.NewFromInt(32000)),
			ActualCost:    ptr(decimal.NewFromInt(34250)),
			CreatedAt:     now,
		},
	}
	for _, o := range orders {
		if err := orderRepo.Create(ctx, o); err != nil {
			log.Fatal().Err(err).Str("orderNumber", o.OrderNumber).Msg("seed order")
		}
	}

	quotes := []*entity.Quote{
		{
			ID:          uuid.New().String(),
			CustomerID:  mueller.ID,
			QuoteNumber: "O-2026-001",
			Title:       "Offerte Badsanierung EG",
			Status:      entity.QuoteStatusAccepted,
			IssueDate:   now.AddDate(0, -2, 0),
			ValidUntil:  ptr(now.AddDate(0, -1, 0)),
			Total:       decimal.NewFromInt(18500),
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			CustomerID:  keller.ID,
			QuoteNumber: "O-2026-002",
			Title:       "Offerte Fassadenreinigung",
			Status:      entity.QuoteStatusSent,
			IssueDate:   now.AddDate(0, 0, -7),
			ValidUntil:  ptr(now.AddDate(0, 1, 0)),
			Total:       decimal.NewFromInt(7400),
			CreatedAt:   now,
		},
	}
	for _, q := range quotes {
		if err := quoteRepo.Create(ctx, q); err != nil {
			log.Fatal().Err(err).Str("quoteNumber", q.QuoteNumber).Msg("seed quote")
		}
	}

	invoices := []*entity.Invoice{
		{
			ID:            uuid.New().String(),
			CustomerID:    weber.ID,
			OrderID:       &orders[4].ID,
			InvoiceNumber: "R-2026-001",
			Title:         "Küchenumbau",
			Status:        entity.InvoiceStatusPaid,
			IssueDate:     now.AddDate(0, -1, 0),
			DueDate:       ptr(now.AddDate(0, 0, -5)),
			PaidDate:      ptr(now.AddDate(0, 0, -10)),
			Total:         decimal.NewFromInt(34250),
			PaidAmount:    ptr(decimal.NewFromInt(34250)),
			CreatedAt:     now,
		},
		{
			ID:            uuid.New().String(),
			CustomerID:    mueller.ID,
			OrderID:       &orders[0].ID,
			InvoiceNumber: "R-2026-002",
			Title:         "Akontorechnung Badsanierung",
			Status:        entity.InvoiceStatusSent,
			IssueDate:     now.AddDate(0, 0, -3),
			DueDate:       ptr(now.AddDate(0, 1, 0)),
			Total:         decimal.NewFromInt(9250),
			CreatedAt:     now,
		},
	}
	for _, i := range invoices {
		if err := invoiceRepo.Create(ctx, i); err != nil {
			log.Fatal().Err(err).Str("invoiceNumber", i.InvoiceNumber).Msg("seed invoice")
		}
	}

	log.Info().
		Int("customers", 3).
		Int("orders", len(orders)).
		Int("quotes", len(quotes)).
		Int("invoices", len(invoices)).
		Msg("demo data created")
}
