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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_booking"
	getFieldHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_field"
	getFieldBookingsHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/get_field_bookings"
	searchFieldsHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/search_fields"
	updateBookingStatusHandler "github.com/m04kA/SMC-ArenaBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-ArenaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBooking/internal/config"
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/lock/redislock"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/migrator"
	bookingRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/memory"
	bookingsService "github.com/m04kA/SMC-ArenaBooking/internal/service/bookings"
	fieldsService "github.com/m04kA/SMC-ArenaBooking/internal/service/fields"
	createBookingUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_available_slots"
	searchFieldsUC "github.com/m04kA/SMC-ArenaBooking/internal/usecase/search_fields"
	"github.com/m04kA/SMC-ArenaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/keylock"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/metrics"
	"github.com/m04kA/SMC-ArenaBooking/pkg/mq"
	"github.com/m04kA/SMC-ArenaBooking/pkg/txmanager"
)

// Хранилища, между которыми выбирает storage.driver
type (
	fieldStore interface {
		GetByID(ctx context.Context, id string) (*domain.Field, error)
		List(ctx context.Context) ([]*domain.Field, error)
		ListScheduleRules(ctx context.Context, fieldID string) ([]*domain.ScheduleRule, error)
	}

	bookingStore interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetByID(ctx context.Context, id string) (*domain.Booking, error)
		GetByFieldAndDate(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
		UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	}

	txManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	slotLocker interface {
		Lock(ctx context.Context, key string) (func(), error)
	}

	eventPublisher interface {
		PublishJSON(ctx context.Context, key string, v any) error
		Close() error
	}

	bookingMetrics interface {
		RecordBooking(outcome string)
	}
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

	log.Info("Starting SMC-ArenaBooking...")
	log.Info("Configuration loaded from config.toml (storage=%s, redis=%t, broker=%t)",
		cfg.Storage.Driver, cfg.Redis.Enabled, cfg.Broker.Enabled)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		outcomes         bookingMetrics = metrics.Noop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		outcomes = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		fields    fieldStore
		bookings  bookingStore
		txMgr     txManager
		readiness func(ctx context.Context) error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		fieldMem := memory.NewFieldStore()
		if cfg.Storage.SeedFile != "" {
			seed, err := memory.LoadSeed(cfg.Storage.SeedFile)
			if err != nil {
				log.Fatal("Failed to load seed file %s: %v", cfg.Storage.SeedFile, err)
			}
			if err := seed.Apply(fieldMem); err != nil {
				log.Fatal("Failed to apply seed file %s: %v", cfg.Storage.SeedFile, err)
			}
			log.Info("Seeded %d fields from %s", len(seed.Fields), cfg.Storage.SeedFile)
		}

		fields = fieldMem
		bookings = memory.NewBookingStore()
		txMgr = memory.TxManager{}
		readiness = func(context.Context) error { return nil }
		log.Warn("Using in-memory storage, bookings are lost on restart")

	default:
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

		if cfg.Database.MigrateOnStart {
			version, err := migrator.Up(db)
			if err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Database schema is at version %d", version)
		}

		// Без метрик обёртка только пробрасывает вызовы
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		if metricsCollector != nil {
			log.Info("Database metrics collection started")
		}

		fields = fieldRepo.NewRepository(wrappedDB)
		bookings = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		readiness = db.PingContext
	}

	// Блокировка слота: Redis для нескольких экземпляров, иначе в памяти процесса
	var locker slotLocker = keylock.New()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		locker = redislock.New(
			redisClient,
			cfg.Redis.KeyPrefix,
			time.Duration(cfg.Redis.LockTTL)*time.Second,
			time.Duration(cfg.Redis.LockRetryMillis)*time.Millisecond,
			log,
		)
		log.Info("Redis slot lock enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	}

	// Публикация событий о бронированиях
	var publisher eventPublisher = mq.NopPublisher{}
	if cfg.Broker.Enabled {
		p, err := mq.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = p
		log.Info("Booking events are published to exchange %s", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(fields, bookings, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		getAvailableSlotsUseCase,
		bookings,
		txMgr,
		locker,
		publisher,
		outcomes,
		log,
		createBookingUC.Options{
			DefaultStatus:    domain.BookingStatus(cfg.Booking.DefaultStatus),
			Location:         location,
			OperationTimeout: time.Duration(cfg.Booking.OperationTimeout) * time.Second,
		},
	)

	searchFieldsUseCase := searchFieldsUC.NewUseCase(fields, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookings, fields, txMgr, publisher, outcomes, log)
	fieldSvc := fieldsService.NewService(fields, txMgr, log)

	// Инициализируем handlers
	searchFields := searchFieldsHandler.NewHandler(searchFieldsUseCase, log)
	getField := getFieldHandler.NewHandler(fieldSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := readiness(ctx); err != nil {
			log.Warn("GET /health - storage is not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "storage is not ready")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Площадки ---
	api.HandleFunc("/fields", searchFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}", getField.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
