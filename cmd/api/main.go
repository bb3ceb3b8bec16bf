package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/analytics"
	"github.com/Dan9191/coop-loan-analytics/internal/config"
	"github.com/Dan9191/coop-loan-analytics/internal/handler"
	"github.com/Dan9191/coop-loan-analytics/internal/integrations/cbr"
	"github.com/Dan9191/coop-loan-analytics/internal/middleware"
	"github.com/Dan9191/coop-loan-analytics/internal/repository"
	"github.com/Dan9191/coop-loan-analytics/internal/service"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

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
	engine := analytics.NewEngine(analytics.Options{Trend: trendOptions(cfg)})
	cbrClient := cbr.NewCBRClient(cfg, logger)
	svc := service.NewService(repo, engine, cbrClient, logger)
	h := handler.NewHandler(svc, logger)

	scheduler, err := svc.StartKeyRateRefresh(cfg.KeyRateRefresh)
	if err != nil {
		logger.Fatalf("Failed to schedule key rate refresh: %v", err)
	}
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	h.Register(r, middleware.AuthMiddleware(cfg))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
}

func trendOptions(cfg *config.Config) analytics.TrendOptions {
	opts := analytics.TrendOptions{Seed: cfg.TrendSeed}
	if cfg.TrendBucketing == "calendar" {
		opts.Bucketing = analytics.BucketByCalendarMonth
	}
	if cfg.TrendFill == "none" {
		opts.Fill = analytics.FillNone
	}
	return opts
}
