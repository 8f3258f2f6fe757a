package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignMechanicHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/assign_mechanic"
	bookServiceHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/book_service"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/dashboards"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/health"
	loginHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/login"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/logout"
	newMechanicHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/new_mechanic"
	processRequestsHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/process_requests"
	registerHandler "github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers/register"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/routes"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/identity"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/integrations/mailer"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/integrations/smsgateway"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/notifications"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/service/servicerequests"
	assignMechanicUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/assign_mechanic"
	loginUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/login"
	processRequestsUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/process_requests"
	provisionAccountUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/provision_account"
	submitBookingUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/submit_booking"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/metrics"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting service request app...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	ctx := context.Background()

	// Metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Tracing (if enabled)
	shutdownTracing := tracing.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.Tracing.Enabled {
		shutdownTracing, err = tracing.Init(ctx, tracing.Config{
			ServiceName: cfg.Metrics.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			URLPath:     cfg.Tracing.URLPath,
			Insecure:    cfg.Tracing.Insecure,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			log.Fatal("Failed to initialize tracing: %v", err)
		}
		log.Info("Tracing enabled, exporting to %s%s", cfg.Tracing.Endpoint, cfg.Tracing.URLPath)
	}

	// Storage
	repos, err := storage.Open(ctx, cfg, storage.Options{
		Metrics: metricsCollector,
		StopCh:  stopMetricsCh,
		Logger:  log,
	})
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}

	// Identity
	gateway := identity.NewGateway(repos.Credentials)
	tokens := identity.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())

	// Notification transports; a nil sender disables its channel
	var emailSender notifications.EmailSender
	if cfg.SMTP.Enabled {
		emailSender = mailer.NewClient(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Timeout:  time.Duration(cfg.SMTP.Timeout) * time.Second,
		}, log)
		log.Info("Email notifications enabled (host=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	var smsSender notifications.SMSSender
	if cfg.SMS.Enabled {
		smsSender = smsgateway.NewClient(smsgateway.Config{
			BaseURL:    cfg.SMS.BaseURL,
			AccountSID: cfg.SMS.AccountSID,
			AuthToken:  cfg.SMS.AuthToken,
			From:       cfg.SMS.From,
			Timeout:    time.Duration(cfg.SMS.Timeout) * time.Second,
		}, log)
		log.Info("SMS notifications enabled (gateway=%s)", cfg.SMS.BaseURL)
	}

	admins := make([]notifications.Recipient, 0, len(cfg.Admins))
	for _, a := range cfg.Admins {
		admins = append(admins, notifications.Recipient{Email: a.Email, Phone: a.Phone})
	}

	// Hidden dashboard paths
	var reservedPaths []string
	if cfg.Metrics.Enabled {
		reservedPaths = append(reservedPaths, cfg.Metrics.Path)
	}
	paths, err := routes.GeneratePaths(cfg.Routes, reservedPaths...)
	if err != nil {
		log.Fatal("Failed to generate dashboard paths: %v", err)
	}
	log.Info("Dashboard paths: client=%s, mechanic=%s, admin=%s, new_mechanic=%s, assign_mechanic=%s",
		paths.ClientDashboard, paths.MechanicDashboard, paths.AdminDashboard, paths.NewMechanic, paths.AssignMechanic)

	bookingLocation, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Services
	notifier := notifications.NewService(emailSender, smsSender, admins, metricsCollector, log)
	requestSvc := servicerequests.NewService(repos.ServiceRequests, repos.Users, log)

	// Use cases
	provisionUseCase := provisionAccountUC.NewUseCase(gateway, repos.Users, log)
	loginUseCase := loginUC.NewUseCase(gateway, repos.Users, tokens, paths, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(repos.ServiceRequests, notifier, metricsCollector, bookingLocation, log)
	assignMechanicUseCase := assignMechanicUC.NewUseCase(repos.ServiceRequests, repos.Users, notifier, metricsCollector, log)
	processRequestsUseCase := processRequestsUC.NewUseCase(cfg.Requests.InboxFile, cfg.Requests.ConfirmedFile, log)

	// Router
	deps := routes.Deps{
		Paths: paths,
		Auth:  middleware.NewAuth(tokens, repos.Users, cfg.Auth.CookieName, log),

		Health:            health.NewHandler(),
		Register:          registerHandler.NewHandler(provisionUseCase, log),
		Login:             loginHandler.NewHandler(loginUseCase, loginHandler.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.SecureCookie}, log),
		Logout:            logout.NewHandler(cfg.Auth.CookieName, cfg.Auth.SecureCookie),
		BookService:       bookServiceHandler.NewHandler(submitBookingUseCase, log),
		ClientDashboard:   dashboards.NewClientHandler(requestSvc, log),
		MechanicDashboard: dashboards.NewMechanicHandler(requestSvc, log),
		AdminDashboard:    dashboards.NewAdminHandler(requestSvc, log),
		NewMechanic:       newMechanicHandler.NewHandler(provisionUseCase, log),
		AssignMechanic:    assignMechanicHandler.NewHandler(assignMechanicUseCase, log),
		ProcessRequests:   processRequestsHandler.NewHandler(processRequestsUseCase, log),
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.Tracing.Enabled {
		deps.TracingService = cfg.Metrics.ServiceName
	}

	r := routes.NewRouter(deps)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Stop connection pool metrics collection
	close(stopMetricsCh)

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	if err := repos.Close(shutdownCtx); err != nil {
		log.Error("Failed to close storage: %v", err)
	}

	log.Info("Server stopped gracefully")
}
