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

	cancelReservationHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/cancel_reservation"
	companyScheduleHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/company_schedule"
	deleteSlotHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/generate_slots"
	getCompanyDefaultsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_company_defaults"
	listReservationsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_reservations"
	listSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_slots"
	monthOverviewHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/month_overview"
	reserveSlotHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/reserve_slot"
	updateCompanyDefaultsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/update_company_defaults"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/config"
	defaultsRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/defaults"
	reservationRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
	gigServiceClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
	repServiceClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/repservice"
	defaultsService "github.com/m04kA/SMC-SchedulerService/internal/service/defaults"
	slotsService "github.com/m04kA/SMC-SchedulerService/internal/service/slots"
	cancelReservationUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/cancel_reservation"
	companyScheduleUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/company_schedule"
	generateSlotsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/generate_slots"
	monthOverviewUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/month_overview"
	reserveSlotUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/logger"
	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulerService...")
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
	gigClient := gigServiceClient.NewClient(
		cfg.GigService.URL,
		time.Duration(cfg.GigService.Timeout)*time.Second,
		log,
	)
	repClient := repServiceClient.NewClient(
		cfg.RepService.URL,
		time.Duration(cfg.RepService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GigService=%s timeout=%ds, RepService=%s timeout=%ds)",
		cfg.GigService.URL, cfg.GigService.Timeout, cfg.RepService.URL, cfg.RepService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		reservationRepository *reservationRepo.Repository
		defaultsRepository    *defaultsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		defaultsRepository = defaultsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		defaultsRepository = defaultsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(
		slotRepository,
		reservationRepository,
		log,
	)
	defaultsSvc := defaultsService.NewService(
		defaultsRepository,
		gigClient,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		defaultsRepository,
		gigClient,
		log,
	)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		slotRepository,
		reservationRepository,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		txMgr,
		log,
	)
	companyScheduleUseCase := companyScheduleUC.NewUseCase(
		slotRepository,
		gigClient,
		repClient,
		log,
	)
	monthOverviewUseCase := monthOverviewUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	companySchedule := companyScheduleHandler.NewHandler(companyScheduleUseCase, log)
	monthOverview := monthOverviewHandler.NewHandler(monthOverviewUseCase, log)
	getCompanyDefaults := getCompanyDefaultsHandler.NewHandler(defaultsSvc, log)
	updateCompanyDefaults := updateCompanyDefaultsHandler.NewHandler(defaultsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Календарная сетка месяца
	api.HandleFunc("/slots/calendar", monthOverview.Handle).Methods(http.MethodGet)

	// Список броней с фильтрацией
	api.HandleFunc("/slots/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Список слотов с фильтрацией
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Расписание компании на дату
	api.HandleFunc("/companies/{companyId}/schedule", companySchedule.Handle).Methods(http.MethodGet)

	// Настройки генерации компании
	api.HandleFunc("/companies/{companyId}/defaults", getCompanyDefaults.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Слоты ---
	// Генерация слотов по диапазону дат
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Бронирование места в слоте
	protected.HandleFunc("/slots/{slotId}/reserve", reserveSlot.Handle).Methods(http.MethodPost)

	// Отмена брони
	protected.HandleFunc("/slots/reservations/{reservationId}",
		cancelReservation.Handle).Methods(http.MethodDelete)

	// Удаление слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Управление компанией ---
	// Сохранение настроек генерации
	protected.HandleFunc("/companies/{companyId}/defaults",
		updateCompanyDefaults.Handle).Methods(http.MethodPut)

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
