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
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	applyZonePriceHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/apply_zone_price"
	bulkUpdateStatusHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/bulk_update_status"
	cancelReservationHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/create_reservation"
	exportReservationsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/export_reservations"
	getDashboardHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/get_dashboard"
	getPageHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/get_page"
	getPricesHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/get_prices"
	getWeatherHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/get_weather"
	listPagesHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/list_pages"
	listReservationsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/list_rooms"
	lookupReservationsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/lookup_reservations"
	quoteReservationHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/quote_reservation"
	searchRoomsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/search_rooms"
	updateCheckFlagsHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/update_check_flags"
	updatePageHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/update_page"
	updatePricesHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/update_prices"
	updateReservationStatusHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/update_reservation_status"
	updateRoomHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/update_room"
	uploadImageHandler "github.com/m04kA/villa-booking-service/internal/api/handlers/upload_image"
	"github.com/m04kA/villa-booking-service/internal/api/middleware"
	"github.com/m04kA/villa-booking-service/internal/config"
	"github.com/m04kA/villa-booking-service/internal/infra/filestore"
	"github.com/m04kA/villa-booking-service/internal/infra/numbers"
	contentRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/content"
	priceRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/price"
	reservationRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/room"
	"github.com/m04kA/villa-booking-service/internal/integrations/weather"
	contentService "github.com/m04kA/villa-booking-service/internal/service/content"
	pricesService "github.com/m04kA/villa-booking-service/internal/service/prices"
	reservationsService "github.com/m04kA/villa-booking-service/internal/service/reservations"
	roomsService "github.com/m04kA/villa-booking-service/internal/service/rooms"
	createReservationUC "github.com/m04kA/villa-booking-service/internal/usecase/create_reservation"
	getDashboardUC "github.com/m04kA/villa-booking-service/internal/usecase/get_dashboard"
	quoteReservationUC "github.com/m04kA/villa-booking-service/internal/usecase/quote_reservation"
	searchRoomsUC "github.com/m04kA/villa-booking-service/internal/usecase/search_rooms"
	"github.com/m04kA/villa-booking-service/pkg/dbmetrics"
	"github.com/m04kA/villa-booking-service/pkg/logger"
	"github.com/m04kA/villa-booking-service/pkg/metrics"
	"github.com/m04kA/villa-booking-service/pkg/txmanager"
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

	log.Info("Starting villa-booking-service...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Unknown booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены). nil-коллектор допустим везде ниже.
	var metricsCollector *metrics.Metrics
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// gorm для контентных страниц работает поверх того же пула
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		log.Fatal("Failed to initialize gorm: %v", err)
	}
	if err := contentRepo.Migrate(gormDB); err != nil {
		log.Fatal("Failed to migrate pages table: %v", err)
	}

	// Redis (необязателен): множество выданных номеров брони и кэш погоды
	var (
		usedNumbers  numbers.UsedSet = numbers.NewMemorySet()
		weatherCache weather.Cache
	)
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis is unreachable (%s), falling back to in-process state: %v", cfg.Redis.Addr, err)
		} else {
			usedNumbers = numbers.NewRedisSet(redisClient)
			weatherCache = weather.NewRedisCache(redisClient)
			log.Info("Connected to redis at %s", cfg.Redis.Addr)
		}
	} else {
		log.Info("Redis is not configured, reservation numbers are tracked in-process")
	}

	// Инициализируем интеграционных клиентов
	weatherClient := weather.NewClient(weather.Config{
		BaseURL:  cfg.Weather.BaseURL,
		APIKey:   cfg.Weather.APIKey,
		Lat:      cfg.Weather.Lat,
		Lon:      cfg.Weather.Lon,
		Timeout:  time.Duration(cfg.Weather.Timeout) * time.Second,
		CacheTTL: time.Duration(cfg.Weather.CacheTTL) * time.Second,
	}, weatherCache, log)
	log.Info("Weather client initialized (url=%s timeout=%ds)", cfg.Weather.BaseURL, cfg.Weather.Timeout)

	files := filestore.New(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	priceRepository := priceRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	pageRepository := contentRepo.NewRepository(gormDB)

	timeProvider := &createReservationUC.RealTimeProvider{Location: location}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		txMgr,
		metricsCollector,
		timeProvider,
		cfg.Booking.BulkParallelism,
		log,
	)
	priceSvc := pricesService.NewService(roomRepository, priceRepository, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	contentSvc := contentService.NewService(pageRepository, files, log)

	// Инициализируем use cases
	searchRoomsUseCase := searchRoomsUC.NewUseCase(roomRepository, reservationRepository, log)
	quoteReservationUseCase := quoteReservationUC.NewUseCase(roomRepository, priceRepository, reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		roomRepository,
		priceRepository,
		reservationRepository,
		numbers.NewAllocator(usedNumbers).In(location).CheckStored(reservationRepository),
		txMgr,
		metricsCollector,
		timeProvider,
		log,
	)
	getDashboardUseCase := getDashboardUC.NewUseCase(roomRepository, reservationRepository, timeProvider, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные изображения раздаются статикой
	r.PathPrefix(cfg.Uploads.RoutePrefix + "/").Handler(
		http.StripPrefix(cfg.Uploads.RoutePrefix+"/", http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт для гостей)
	// ============================================================

	// --- Номера ---
	api.HandleFunc("/rooms", listRoomsHandler.NewHandler(roomSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/available", searchRoomsHandler.NewHandler(searchRoomsUseCase, log).Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations/quote", quoteReservationHandler.NewHandler(quoteReservationUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservationHandler.NewHandler(createReservationUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/lookup", lookupReservationsHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{number}/cancel", cancelReservationHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodPatch)

	// --- Контент ---
	api.HandleFunc("/weather", getWeatherHandler.NewHandler(weatherClient, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/pages/{slug}", getPageHandler.NewHandler(contentSvc, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Дашборд ---
	admin.HandleFunc("/dashboard", getDashboardHandler.NewHandler(getDashboardUseCase, log).Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservationsHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/export", exportReservationsHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/status", bulkUpdateStatusHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id:[0-9]+}/status", updateReservationStatusHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id:[0-9]+}/check", updateCheckFlagsHandler.NewHandler(reservationSvc, log).Handle).Methods(http.MethodPatch)

	// --- Цены ---
	admin.HandleFunc("/prices", getPricesHandler.NewHandler(priceSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/prices", updatePricesHandler.NewHandler(priceSvc, log).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/prices/zones/{zone}", applyZonePriceHandler.NewHandler(priceSvc, log).Handle).Methods(http.MethodPut)

	// --- Контент ---
	admin.HandleFunc("/rooms/{roomId}", updateRoomHandler.NewHandler(roomSvc, log).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/pages", listPagesHandler.NewHandler(contentSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/pages/{slug}", updatePageHandler.NewHandler(contentSvc, log).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/uploads", uploadImageHandler.NewHandler(contentSvc, log).Handle).Methods(http.MethodPost)

	// CORS для фронтенда сайта и админки
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.AdminTokenHeader}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Disposition"}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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
