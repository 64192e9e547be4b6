package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/get_appointment"
	healthHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/list_services"
	updateStatusHandler "github.com/ecrodrig/SLN-AgendaService/internal/api/handlers/update_status"
	"github.com/ecrodrig/SLN-AgendaService/internal/api/middleware"
	"github.com/ecrodrig/SLN-AgendaService/internal/config"
	apptRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/appointment"
	serviceRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/service"
	appointmentsService "github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
	catalogService "github.com/ecrodrig/SLN-AgendaService/internal/service/catalog"
	createAppointmentUC "github.com/ecrodrig/SLN-AgendaService/internal/usecase/create_appointment"
	"github.com/ecrodrig/SLN-AgendaService/pkg/dbmetrics"
	"github.com/ecrodrig/SLN-AgendaService/pkg/logger"
	"github.com/ecrodrig/SLN-AgendaService/pkg/metrics"
	"github.com/ecrodrig/SLN-AgendaService/pkg/simpletxmanager"
	"github.com/ecrodrig/SLN-AgendaService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SLN-AgendaService...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and tx manager, with or without query metrics.
	var (
		appointmentRepository *apptRepo.Repository
		serviceRepository     *serviceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	apptSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Seed the catalog on first start.
	if err := catalogSvc.EnsureDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed default services: %v", err)
	}

	// Use cases.
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		txMgr,
		log,
	)

	// Handlers.
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(apptSvc, log)
	updateStatus := updateStatusHandler.NewHandler(apptSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(apptSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	health := healthHandler.NewHandler(db)

	// Router.
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Catalog.
	api.HandleFunc("/servicos", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/servicos", createService.Handle).Methods(http.MethodPost)

	// Appointments.
	api.HandleFunc("/agendamentos", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agendamentos", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/agendamentos/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agendamentos/{id}", updateStatus.Handle).Methods(http.MethodPut)
	api.HandleFunc("/agendamentos/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Health check.
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
