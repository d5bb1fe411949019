package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSeatsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/book_seats"
	cancelBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_booking"
	getOwnerBookingsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_owner_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/get_user_bookings"
	listingsHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/listings"
	seatMapHandler "github.com/m04kA/SMC-TravelBooking/internal/api/handlers/seat_map"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/config"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	transportRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/transport"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	listingsService "github.com/m04kA/SMC-TravelBooking/internal/service/listings"
	bookSeatsUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/book_seats"
	checkAvailabilityUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/create_booking"
	seatMapUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/seat_map"
	seedUC "github.com/m04kA/SMC-TravelBooking/internal/usecase/seed"
	"github.com/m04kA/SMC-TravelBooking/pkg/broker"
	"github.com/m04kA/SMC-TravelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/memory"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/postgres"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
	"github.com/m04kA/SMC-TravelBooking/pkg/metrics"
	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

// TxManager транзакции над хранилищем документов (txmanager или memory)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher публикация событий бронирований
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// BookingMetrics счетчики бронирований; nil, если метрики выключены
type BookingMetrics interface {
	BookingCreated(kind string)
	BookingCancelled(kind string)
	BookingConflict(kind string)
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	forceSeed := flag.Bool("seed", false, "seed demo data into an empty store")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-TravelBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
		httpCollector    middleware.HTTPCollector
		bookingMetrics   BookingMetrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		httpCollector = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище документов
	var (
		store docstore.Store
		txMgr TxManager
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
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
		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)

		if cfg.Storage.Migrate {
			if err := postgres.Migrate(ctx, wrappedDB); err != nil {
				log.Fatal("Failed to migrate document schema: %v", err)
			}
			log.Info("Document schema is up to date")
		}

		opts := []postgres.Option{postgres.WithLogger(log)}
		if cfg.Storage.Subscriptions {
			opts = append(opts, postgres.WithListenerDSN(cfg.Database.DSN()))
		}
		store = postgres.NewStore(wrappedDB, opts...)
		txMgr = txmanager.NewTransactionManager(wrappedDB).WithMaxAttempts(cfg.Storage.TxMaxAttempts)

	case config.DriverMemory:
		store = memory.NewStore()
		txMgr = memory.NewTxManager()
		log.Warn("Using in-memory document store, data is lost on restart")

	default:
		log.Fatal("Unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Публикация событий бронирований
	var publisher Publisher = broker.NopPublisher{}
	if cfg.Broker.Enabled {
		p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		log.Info("Booking events are published to exchange %s", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store)
	listingRepository := listingRepo.NewRepository(store)
	transportRepository := transportRepo.NewRepository(store)
	userRepository := userRepo.NewRepository(store)

	// Лента изменений бронирований
	if cfg.Storage.Subscriptions {
		sub, err := store.Subscribe(ctx, domain.CollectionBookings, func(ch docstore.Change) {
			log.Info("Booking document %s: id=%s", ch.Op, ch.ID)
		})
		if err != nil {
			log.Error("Failed to subscribe to booking changes: %v", err)
		} else {
			defer sub.Close()
			log.Info("Subscribed to booking changes")
		}
	}

	// Начальные данные
	if cfg.Seed.Enabled || *forceSeed {
		seeded, err := seedUC.NewUseCase(listingRepository, transportRepository, userRepository, log).SeedIfEmpty(ctx)
		if err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
		log.Info("Demo data seeding finished: seeded=%t", seeded)
	}

	priceTable := cfg.Pricing.PriceTable()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		txMgr,
		publisher,
		bookingMetrics,
		log,
	)
	listingSvc := listingsService.NewService(
		listingRepository,
		transportRepository,
		userRepository,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, listingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		listingRepository,
		userRepository,
		checkAvailabilityUseCase,
		txMgr,
		publisher,
		bookingMetrics,
		log,
	)

	bookSeatsUseCase := bookSeatsUC.NewUseCase(
		bookingRepository,
		transportRepository,
		userRepository,
		txMgr,
		publisher,
		bookingMetrics,
		priceTable,
		log,
	)

	seatMapUseCase := seatMapUC.NewUseCase(transportRepository, priceTable, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	seatMap := seatMapHandler.NewHandler(seatMapUseCase, log)
	bookSeats := bookSeatsHandler.NewHandler(bookSeatsUseCase, log)
	listings := listingsHandler.NewHandler(listingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(httpCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/hotels", listings.ListHotels).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}", listings.GetHotel).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/rooms", listings.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/buses", listings.ListBuses).Methods(http.MethodGet)
	api.HandleFunc("/flights", listings.ListFlights).Methods(http.MethodGet)

	// Доступность номера на даты
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Карты мест и расчёт стоимости ---
	api.HandleFunc("/buses/{busId}/seats", seatMap.BusSeats).Methods(http.MethodGet)
	api.HandleFunc("/flights/{flightId}/seats", seatMap.FlightSeats).Methods(http.MethodGet)
	api.HandleFunc("/buses/{busId}/quote", seatMap.QuoteBus).Methods(http.MethodPost)
	api.HandleFunc("/flights/{flightId}/quote", seatMap.QuoteFlight).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/buses/{busId}/bookings", bookSeats.HandleBus).Methods(http.MethodPost)
	protected.HandleFunc("/flights/{flightId}/bookings", bookSeats.HandleFlight).Methods(http.MethodPost)

	// --- Управление каталогом (владельцы и администраторы) ---
	protected.HandleFunc("/owner/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels", listings.CreateHotel).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}/status", listings.SetHotelStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/hotels/{hotelId}/rooms", listings.CreateRoom).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}/status", listings.SetRoomStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/buses", listings.CreateBus).Methods(http.MethodPost)
	protected.HandleFunc("/flights", listings.CreateFlight).Methods(http.MethodPost)

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
	<-ctx.Done()

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
