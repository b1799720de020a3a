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

	checkRemindersHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/check_upcoming_reservations"
	getCurrentUserHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_current_user"
	getDashboardHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_dashboard"
	getFeaturedHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_featured_companies"
	getPreferencesHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_preferences"
	getScheduleHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_schedule"
	getExceptionsHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/get_schedule_exceptions"
	resetPasswordHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/reset_password"
	saveScheduleHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/save_schedule"
	setScheduleTimeHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/set_schedule_time"
	signInHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/sign_up"
	toggleScheduleDayHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/toggle_schedule_day"
	updatePreferencesHandler "github.com/m04kA/SMC-BookingPlatform/internal/api/handlers/update_preferences"
	"github.com/m04kA/SMC-BookingPlatform/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPlatform/internal/config"
	companyRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/company"
	preferencesStorage "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/preferences"
	profileRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/profile"
	reservationRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/service"
	authServiceClient "github.com/m04kA/SMC-BookingPlatform/internal/integrations/authservice"
	"github.com/m04kA/SMC-BookingPlatform/internal/integrations/smsgateway"
	"github.com/m04kA/SMC-BookingPlatform/internal/scheduler"
	availabilityService "github.com/m04kA/SMC-BookingPlatform/internal/service/availability"
	dashboardService "github.com/m04kA/SMC-BookingPlatform/internal/service/dashboard"
	listingService "github.com/m04kA/SMC-BookingPlatform/internal/service/listing"
	localizationService "github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
	sessionService "github.com/m04kA/SMC-BookingPlatform/internal/service/session"
	checkRemindersUC "github.com/m04kA/SMC-BookingPlatform/internal/usecase/check_upcoming_reservations"
	"github.com/m04kA/SMC-BookingPlatform/pkg/dbmetrics"
	"github.com/m04kA/SMC-BookingPlatform/pkg/logger"
	"github.com/m04kA/SMC-BookingPlatform/pkg/metrics"
)

const defaultConfigPath = "configs/config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BookingPlatform...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
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

	// Репозитории работают через обёртку с метриками, если они включены
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	profileRepository := profileRepo.NewRepository(executor)
	companyRepository := companyRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	// Хранилище языковых и валютных предпочтений
	var prefsStorage localizationService.PreferenceStorage
	switch cfg.Preferences.Storage {
	case config.PreferencesStorageRedis:
		redisClient := preferencesStorage.NewRedisClient(
			cfg.Preferences.RedisAddr,
			cfg.Preferences.RedisPassword,
			cfg.Preferences.RedisDB,
		)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, preferences fall back to defaults until it is: %v",
				cfg.Preferences.RedisAddr, err)
		}
		cancel()

		prefsStorage = preferencesStorage.NewRedisStorage(redisClient, cfg.Preferences.RedisPrefix)
		log.Info("Preferences storage: redis (%s)", cfg.Preferences.RedisAddr)
	default:
		fileStorage, err := preferencesStorage.NewFileStorage(cfg.Preferences.FilePath)
		if err != nil {
			log.Fatal("Failed to open preferences file: %v", err)
		}
		prefsStorage = fileStorage
		log.Info("Preferences storage: file (%s)", cfg.Preferences.FilePath)
	}

	// Инициализируем интеграционных клиентов
	authClient := authServiceClient.NewClient(
		cfg.Auth.URL,
		cfg.Auth.APIKey,
		time.Duration(cfg.Auth.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds)", cfg.Auth.URL, cfg.Auth.Timeout)

	var smsSender checkRemindersUC.SMSSender
	if cfg.Reminder.SMSEnabled {
		smsSender = smsgateway.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, log)
		log.Info("SMS reminders enabled (from=%s)", cfg.Twilio.FromNumber)
	}

	var reminderMetrics checkRemindersUC.MetricsRecorder
	if cfg.Metrics.Enabled {
		reminderMetrics = metricsCollector
	}

	// Инициализируем сервисы
	localizationSvc := localizationService.NewService(prefsStorage, log)
	sessionSvc := sessionService.NewService(authClient, profileRepository, log)
	availabilitySvc := availabilityService.NewService(companyRepository, scheduleRepository, log)
	listingSvc := listingService.NewService(
		companyRepository,
		serviceRepository,
		cfg.Listing.Limit,
		cfg.Listing.AllowPartial,
		log,
	)
	dashboardSvc := dashboardService.NewService(profileRepository, companyRepository, availabilitySvc, log)

	// Инициализируем use cases
	checkRemindersUseCase := checkRemindersUC.NewUseCase(
		reservationRepository,
		smsSender,
		reminderMetrics,
		log,
	)

	// Инициализируем handlers
	getFeatured := getFeaturedHandler.NewHandler(listingSvc, localizationSvc, log)
	getPreferences := getPreferencesHandler.NewHandler(localizationSvc)
	updatePreferences := updatePreferencesHandler.NewHandler(localizationSvc, log)
	signIn := signInHandler.NewHandler(sessionSvc, log)
	signUp := signUpHandler.NewHandler(sessionSvc, log)
	resetPassword := resetPasswordHandler.NewHandler(sessionSvc, localizationSvc, log)
	signOut := signOutHandler.NewHandler(sessionSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(sessionSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, localizationSvc, log)
	getSchedule := getScheduleHandler.NewHandler(availabilitySvc, localizationSvc, log)
	saveSchedule := saveScheduleHandler.NewHandler(availabilitySvc, localizationSvc, log)
	toggleScheduleDay := toggleScheduleDayHandler.NewHandler(availabilitySvc, localizationSvc, log)
	setScheduleTime := setScheduleTimeHandler.NewHandler(availabilitySvc, localizationSvc, log)
	getExceptions := getExceptionsHandler.NewHandler(availabilitySvc, log)
	checkReminders := checkRemindersHandler.NewHandler(checkRemindersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Функция напоминаний, открытая для любых источников
	r.Handle("/functions/check-upcoming-reservations",
		middleware.CORS(http.HandlerFunc(checkReminders.Handle))).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Главная страница: избранные компании
	api.HandleFunc("/companies/featured", getFeatured.Handle).Methods(http.MethodGet)

	// Предпочтения устройства (X-Client-ID)
	api.HandleFunc("/preferences", getPreferences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preferences", updatePreferences.Handle).Methods(http.MethodPut)

	// Формы входа, регистрации и сброса пароля
	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", resetPassword.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Сессия ---
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Панель управления ---
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Расписание компании (только владелец) ---
	protected.HandleFunc("/companies/{companyId}/schedules", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/schedules", saveSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{companyId}/schedules/{day:[0-9]+}/toggle", toggleScheduleDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/schedules/{day:[0-9]+}", setScheduleTime.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}/schedule-exceptions", getExceptions.Handle).Methods(http.MethodGet)

	// Периодическая проверка напоминаний
	var jobs *scheduler.Scheduler
	if cfg.Reminder.Enabled {
		jobs, err = scheduler.New(time.Duration(cfg.Reminder.Timeout)*time.Second, log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		if _, err := jobs.AddReminderJob(cfg.Reminder.Schedule, checkRemindersUseCase); err != nil {
			log.Fatal("Failed to register reminder job: %v", err)
		}
		jobs.Start()
	}

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

	if jobs != nil {
		if err := jobs.Shutdown(); err != nil {
			log.Error("Scheduler shutdown failed: %v", err)
		}
	}

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
