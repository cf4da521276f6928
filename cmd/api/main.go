package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/pftrack/finance-service/internal/config"
	"github.com/pftrack/finance-service/internal/handler"
	"github.com/pftrack/finance-service/internal/integrations/bcb"
	"github.com/pftrack/finance-service/internal/middleware"
	"github.com/pftrack/finance-service/internal/repository"
	"github.com/pftrack/finance-service/internal/scheduler"
	"github.com/pftrack/finance-service/internal/service"
	"github.com/pftrack/finance-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	var notifier service.Notifier
	if cfg.SMTPHost != "" {
		notifier = email.NewSender(cfg, logger)
	}

	svc := service.NewService(repo, logger, cfg, notifier)
	h := handler.NewHandler(svc)
	bcbClient := bcb.NewClient(cfg, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// BCB reference rate endpoint
	r.HandleFunc("/market/rate", func(w http.ResponseWriter, r *http.Request) {
		rate, err := bcbClient.GetSelicRate()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get reference rate: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"selic_rate": rate})
	}).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/me", h.Me).Methods("GET")
	authRouter.HandleFunc("/cards", h.CreateCard).Methods("POST")
	authRouter.HandleFunc("/cards", h.ListCards).Methods("GET")
	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/incomes", h.CreateIncome).Methods("POST")
	authRouter.HandleFunc("/incomes", h.ListIncomes).Methods("GET")
	authRouter.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	authRouter.HandleFunc("/loans", h.ListLoans).Methods("GET")
	authRouter.HandleFunc("/financings", h.CreateFinancing).Methods("POST")
	authRouter.HandleFunc("/financings", h.ListFinancings).Methods("GET")
	authRouter.HandleFunc("/dashboard/summary", h.Summary).Methods("GET")
	authRouter.HandleFunc("/dashboard/insights", h.ListInsights).Methods("GET")
	authRouter.HandleFunc("/dashboard/insights/unread", h.ListUnreadInsights).Methods("GET")
	authRouter.HandleFunc("/dashboard/insights/generate", h.GenerateInsights).Methods("POST")
	authRouter.HandleFunc("/dashboard/insights/{id}/read", h.MarkInsightRead).Methods("PUT")

	// Schedule the daily insight sweep
	sched := scheduler.New(svc, logger)
	if err := sched.Start(cfg.InsightsCron); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
