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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminSessionHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/admin_session"
	createBookingHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/get_available_slots"
	getQuoteHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/get_quote"
	listBookingsHandler "github.com/m04kA/SMC-LiftRental/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-LiftRental/internal/api/middleware"
	"github.com/m04kA/SMC-LiftRental/internal/config"
	"github.com/m04kA/SMC-LiftRental/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LiftRental/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LiftRental/internal/integrations/mailer"
	"github.com/m04kA/SMC-LiftRental/internal/integrations/payments"
	"github.com/m04kA/SMC-LiftRental/internal/integrations/recordstore"
	"github.com/m04kA/SMC-LiftRental/internal/service/admingate"
	bookingsService "github.com/m04kA/SMC-LiftRental/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-LiftRental/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-LiftRental/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LiftRental/pkg/logger"
	"github.com/m04kA/SMC-LiftRental/pkg/metrics"
)

// bookingStore общий интерфейс хранилищ бронирований (Airtable и PostgreSQL)
type bookingStore interface {
	ListFrom(ctx context.Context, from time.Time) ([]*domain.Booking, error)
	HasOverlap(ctx context.Context, start, end time.Time) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-LiftRental...")
	log.Info("Configuration loaded from config.toml (store=%s)", cfg.Store.Driver)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	publicPolicy, err := cfg.Policy.Public.ToDomain(location)
	if err != nil {
		log.Fatal("Invalid public policy: %v", err)
	}
	adminPolicy, err := cfg.Policy.Admin.ToDomain(location)
	if err != nil {
		log.Fatal("Invalid admin policy: %v", err)
	}

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	var store bookingStore
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = bookingRepo.NewRepository(db, metricsCollector)

	default:
		store = recordstore.NewClient(recordstore.Options{
			URL:               cfg.Airtable.URL,
			BaseID:            cfg.Airtable.BaseID,
			Table:             cfg.Airtable.Table,
			APIKey:            cfg.Airtable.APIKey,
			Timeout:           time.Duration(cfg.Store.Timeout) * time.Second,
			RequestsPerSecond: cfg.Store.RequestsPerSecond,
		}, metricsCollector, log)
		log.Info("Record store client initialized (url=%s, table=%s, rps=%.1f)",
			cfg.Airtable.URL, cfg.Airtable.Table, cfg.Store.RequestsPerSecond)
	}

	// Внешние интеграции: без них бронирования создаются без оплаты и писем
	var paymentCapturer createBookingUC.PaymentCapturer
	if cfg.Payments.Enabled {
		paymentCapturer = payments.NewClient(payments.Options{
			SecretKey: cfg.Payments.SecretKey,
			Currency:  cfg.Payments.Currency,
			URL:       cfg.Payments.URL,
			Timeout:   time.Duration(cfg.Payments.Timeout) * time.Second,
		}, log)
		log.Info("Payments enabled (currency=%s)", cfg.Payments.Currency)
	}

	var notifier createBookingUC.Notifier
	if cfg.Notifications.Enabled {
		notifier = mailer.New(mailer.Options{
			APIKey:    cfg.Notifications.APIKey,
			FromEmail: cfg.Notifications.FromEmail,
			FromName:  cfg.Notifications.FromName,
			URL:       cfg.Notifications.URL,
			Location:  location,
		}, log)
		log.Info("Confirmation emails enabled (from=%s)", cfg.Notifications.FromEmail)
	}

	// Доступ администратора
	hashKey := []byte(cfg.Admin.SessionHashKey)
	blockKey := []byte(cfg.Admin.SessionBlockKey)
	if len(hashKey) == 0 || len(blockKey) == 0 {
		log.Warn("Session keys are not configured, generated random keys: admin sessions will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
		blockKey = securecookie.GenerateRandomKey(32)
	}
	gate := admingate.NewGate(cfg.Admin.Password, log)
	sessions := admingate.NewSessions(gate, hashKey, blockKey, cfg.Admin.SecureCookie, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, cfg.Booking.CacheTTLDuration(), log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingSvc,
		store,
		paymentCapturer,
		notifier,
		metricsCollector,
		createBookingUC.Options{
			PublicPolicy: publicPolicy,
			AdminPolicy:  adminPolicy,
			HourlyRate:   cfg.Booking.HourlyRate,
		},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingSvc, publicPolicy, adminPolicy, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, domain.FlowPublic, log)
	createAdminBooking := createBookingHandler.NewHandler(createBookingUseCase, domain.FlowAdmin, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, domain.FlowPublic, location, log)
	getAdminSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, domain.FlowAdmin, location, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, listBookingsHandler.PublicView, log)
	listAdminBookings := listBookingsHandler.NewHandler(bookingSvc, listBookingsHandler.AdminView, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getQuote := getQuoteHandler.NewHandler(cfg.Booking.HourlyRate)
	adminSession := adminSessionHandler.NewHandler(sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// Вход и выход администратора
	api.HandleFunc("/admin/login", adminSession.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminSession.Logout).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", adminSession.Status).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют cookie сессии администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(sessions, log))

	admin.HandleFunc("/bookings", listAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createAdminBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/slots", getAdminSlots.Handle).Methods(http.MethodGet)

	// CORS с cookie для фронтенда и перехват паник
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
		gorillaHandlers.AllowCredentials(),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.RecoveryLogger(log))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Ожидаем сигнал завершения
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

	log.Info("Server stopped gracefully")
}
