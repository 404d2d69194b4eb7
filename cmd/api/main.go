package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/handwerkpro/handwerkpro-api/internal/application/customers"
	"github.com/handwerkpro/handwerkpro-api/internal/application/invoices"
	"github.com/handwerkpro/handwerkpro-api/internal/infrastructure/mail"
	"github.com/handwerkpro/handwerkpro-api/internal/infrastructure/pdf"
	"github.com/handwerkpro/handwerkpro-api/internal/infrastructure/postgres"
	apphttp "github.com/handwerkpro/handwerkpro-api/internal/interfaces/http"
	"github.com/handwerkpro/handwerkpro-api/pkg/config"
	"github.com/handwerkpro/handwerkpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Totals serialize as JSON numbers, matching the SPA's expectations.
	decimal.MarshalJSONWithoutQuotes = true

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

	customerUC := customers.NewUseCase(customerRepo, orderRepo, quoteRepo, invoiceRepo)

	pdfGenerator := pdf.NewMarotoInvoiceGenerator(cfg.Company)
	var mailer invoices.Mailer
	if cfg.Mail.Configured() {
		mailer = mail.NewGomailSender(cfg.Mail)
	} else {
		log.Warn().Msg("MAIL_HOST not set, invoice mailing disabled")
	}
	invoiceUC := invoices.NewUseCase(invoiceRepo, customerRepo, pdfGenerator, mailer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: apphttp.NewErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))
	app.Use(apphttp.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HandwerkPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		Customers: customerUC,
		Invoices:  invoiceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
