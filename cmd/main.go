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

	blockedIntervalsHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/blocked_intervals"
	cancelBookingHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/get_booking"
	getConfigHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/get_config"
	listBookingsHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/list_bookings"
	paymentCallbackHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/payment_callback"
	quotePriceHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/quote_price"
	updateConfigHandler "github.com/m04kA/MCB-BookingService/internal/api/handlers/update_config"
	"github.com/m04kA/MCB-BookingService/internal/api/middleware"
	"github.com/m04kA/MCB-BookingService/internal/config"
	blockedRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/blocked"
	bookingRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/booking"
	configRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/config"
	quoteRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/quote"
	geodistClient "github.com/m04kA/MCB-BookingService/internal/integrations/geodist"
	objstorageClient "github.com/m04kA/MCB-BookingService/internal/integrations/objstorage"
	paygateClient "github.com/m04kA/MCB-BookingService/internal/integrations/paygate"
	configService "github.com/m04kA/MCB-BookingService/internal/service/config"
	lifecycleService "github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
	reconcilerService "github.com/m04kA/MCB-BookingService/internal/service/reconciler"
	createBookingUC "github.com/m04kA/MCB-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/MCB-BookingService/internal/usecase/get_availability"
	quotePriceUC "github.com/m04kA/MCB-BookingService/internal/usecase/quote_price"
	"github.com/m04kA/MCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCB-BookingService/pkg/deferred"
	"github.com/m04kA/MCB-BookingService/pkg/logger"
	"github.com/m04kA/MCB-BookingService/pkg/metrics"
	"github.com/m04kA/MCB-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/MCB-BookingService/pkg/txmanager"
)

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

	log.Info("Starting MCB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	payClient := paygateClient.NewClient(
		cfg.Payment.BaseURL,
		cfg.Payment.APIKey,
		cfg.Payment.Secret,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	geoClient := geodistClient.NewClient(
		cfg.Geo.BaseURL,
		float64(cfg.Geo.DefaultDistanceKm),
		time.Duration(cfg.Geo.Timeout)*time.Second,
		log,
	)
	storageClient := objstorageClient.NewClient(
		cfg.Storage.BaseURL,
		cfg.Storage.APIKey,
		cfg.Storage.PublicBaseURL,
		time.Duration(cfg.Storage.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (paygate=%s, geo=%s, storage=%s)",
		cfg.Payment.BaseURL, cfg.Geo.BaseURL, cfg.Storage.BaseURL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		blockedRepository *blockedRepo.Repository
		configRepository  *configRepo.Repository
		quoteRepository   *quoteRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedRepository = blockedRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		quoteRepository = quoteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedRepository = blockedRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		quoteRepository = quoteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Планировщик отложенного удаления отмененных бронирований
	scheduler := deferred.NewScheduler()
	defer scheduler.Stop()

	// Инициализируем сервисы
	configSvc := configService.NewService(configRepository, blockedRepository, log)
	lifecycleSvc := lifecycleService.NewService(bookingRepository, storageClient, log)
	reconcilerSvc := reconcilerService.NewService(
		bookingRepository,
		lifecycleSvc,
		payClient,
		scheduler,
		time.Duration(cfg.Reconciler.DeletionGraceMinutes)*time.Minute,
		log,
	)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(quoteRepository, configSvc, geoClient, log)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		blockedRepository,
		configSvc,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		quoteRepository,
		blockedRepository,
		configSvc,
		payClient,
		createBookingUC.PaymentURLs{
			ReturnURL:   cfg.Payment.ReturnURL,
			CallbackURL: cfg.Payment.CallbackURL,
		},
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(lifecycleSvc, log)
	listBookings := listBookingsHandler.NewHandler(lifecycleSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(lifecycleSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(lifecycleSvc, log)
	completeBooking := completeBookingHandler.NewHandler(lifecycleSvc, log)
	paymentCallback := paymentCallbackHandler.NewHandler(reconcilerSvc, log)
	getConfig := getConfigHandler.NewHandler(configSvc, log)
	updateConfig := updateConfigHandler.NewHandler(configSvc, log)
	blockedIntervals := blockedIntervalsHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости переезда
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Уведомления платежного шлюза
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// --- Конфигурация (fleet | pricing | schedule) ---
	admin.HandleFunc("/config/{section}", getConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/config/{section}", updateConfig.Handle).Methods(http.MethodPut)

	// --- Интервалы блокировки ---
	admin.HandleFunc("/blocked-intervals", blockedIntervals.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-intervals", blockedIntervals.List).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-intervals/{id}", blockedIntervals.Delete).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
