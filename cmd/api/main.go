package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bimafrica/quote-api/internal/config"
	"github.com/bimafrica/quote-api/internal/infra/database"
	"github.com/bimafrica/quote-api/internal/infra/http/handlers"
	"github.com/bimafrica/quote-api/internal/infra/http/middleware"
	"github.com/bimafrica/quote-api/internal/infra/mail"
	"github.com/bimafrica/quote-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Store connectivity is best effort at startup. With no connection the
	// API still serves; store-backed routes answer 503 until it exists.
	var db *sql.DB
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, store-backed routes will answer 503")
	} else {
		conn, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			logger.Error("database connection failed", zap.Error(err))
		} else {
			db = conn
			defer db.Close()
			logger.Info("connected to database")
		}
	}

	if !cfg.SMTPConfigured() {
		logger.Warn("SMTP not configured, notification emails will fail (non-fatal)")
	}

	// Repositories and adapters
	quoteRepo := database.NewQuoteRepository(db)
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPSecure)

	// UseCases
	intakeUC := usecase.NewIntakeLeadUseCase(quoteRepo, logger)
	finalizeUC := usecase.NewFinalizeQuoteUseCase(quoteRepo, mailSender, cfg.SMTPUser, logger)

	// Handlers
	quoteHandler := handlers.NewQuoteHandler(intakeUC, finalizeUC)
	healthHandler := handlers.NewHealthHandler(db, cfg.SMTPConfigured())

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", quoteHandler.HandleRoot)
	r.Post("/lead-intake", quoteHandler.HandleIntake)
	r.Post("/finalize", quoteHandler.HandleFinalize)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
