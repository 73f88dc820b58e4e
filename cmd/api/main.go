// Package main wires the trip booking service together and starts the HTTP
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"tripbooking/config"
	_ "tripbooking/docs"
	"tripbooking/internal/adapters/email"
	deliveryhttp "tripbooking/internal/delivery/http"
	"tripbooking/internal/delivery/http/controllers"
	"tripbooking/internal/delivery/http/middleware"
	"tripbooking/internal/repository/postgres"
	"tripbooking/internal/services"
)

// @title Trip Booking API
// @version 1.0
// @description Trip offerings, client directory, and capacity-safe trip enrollments.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logger := config.NewLogger()

	// The store handle is created once here and injected into every
	// repository; it is the only connection owner in the process.
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	logger.Info("database connection established")

	// Repositories
	tripRepo := postgres.NewTripRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// Services
	catalog := services.NewCatalogService(tripRepo)
	directory := services.NewDirectoryService(clientRepo, enrollmentRepo)
	enrollment := services.NewEnrollmentService(catalog, directory, enrollmentRepo, emailService)

	// Controllers and router
	tripController := controllers.NewTripController(logger, catalog)
	clientController := controllers.NewClientController(logger, directory)
	enrollmentController := controllers.NewEnrollmentController(logger, enrollment)

	mux := deliveryhttp.NewRouter(tripController, clientController, enrollmentController)

	var handler http.Handler = mux
	if cfg.CORSOrigins != "" {
		handler = middleware.CORS(strings.Split(cfg.CORSOrigins, ","), handler)
	}
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for a signal, then give in-flight requests up
	// to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
