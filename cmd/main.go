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

	addReviewHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/add_review"
	adminCatalogHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/admin_catalog"
	adminDashboardHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/admin_dashboard"
	adminSessionHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/admin_session"
	adminShopsHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/admin_shops"
	bookingWizardHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/booking_wizard"
	cancelAppointmentHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_available_slots"
	getLocationsHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_locations"
	getShopHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_shop"
	getShopHoursHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_shop_hours"
	getStaffHoursHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/get_staff_hours"
	"github.com/m04kA/SMC-HairBooking/internal/api/handlers/healthz"
	listShopsHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/list_shops"
	submitLeadHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/submit_lead"
	updateShopHoursHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/update_shop_hours"
	updateStaffHoursHandler "github.com/m04kA/SMC-HairBooking/internal/api/handlers/update_staff_hours"
	"github.com/m04kA/SMC-HairBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HairBooking/internal/config"
	"github.com/m04kA/SMC-HairBooking/internal/infra/migrator"
	"github.com/m04kA/SMC-HairBooking/internal/infra/session"
	appointmentRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/catalog"
	leadRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/lead"
	reviewRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/review"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-HairBooking/internal/integrations/mailer"
	adminService "github.com/m04kA/SMC-HairBooking/internal/service/admin"
	appointmentsService "github.com/m04kA/SMC-HairBooking/internal/service/appointments"
	hoursService "github.com/m04kA/SMC-HairBooking/internal/service/hours"
	leadsService "github.com/m04kA/SMC-HairBooking/internal/service/leads"
	shopsService "github.com/m04kA/SMC-HairBooking/internal/service/shops"
	bookingWizardUC "github.com/m04kA/SMC-HairBooking/internal/usecase/booking_wizard"
	createBookingUC "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-HairBooking/migrations"
	"github.com/m04kA/SMC-HairBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
	"github.com/m04kA/SMC-HairBooking/pkg/metrics"
	"github.com/m04kA/SMC-HairBooking/pkg/txmanager"
)

const (
	// sweepInterval период очистки истёкших сессий в памяти и счётчиков лимитера
	sweepInterval = time.Minute
	// rateLimitIdle через сколько забываем неактивного клиента лимитера
	rateLimitIdle = 10 * time.Minute
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

	log.Info("Starting SMC-HairBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет.
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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
	log.Info("Successfully connected to database")

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		m, err := migrator.NewMigrator(db, migrations.FS, ".", log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Хранилище сессий: Redis с переключением на память, либо только память
	memoryBackend := session.NewMemoryBackend()
	var sessionBackend session.Backend = memoryBackend
	if cfg.Redis.Enabled {
		redisClient := session.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := session.Ping(pingCtx, redisClient); err != nil {
			log.Warn("Redis is unavailable at %s, sessions fall back to memory: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancel()

		sessionBackend = session.NewFailoverBackend(session.NewRedisBackend(redisClient), memoryBackend, log)
	}
	sessions := session.NewStore(sessionBackend, cfg.Session.TTL())
	go runSweeper(stopCh, func() { memoryBackend.Sweep() })

	// SMTP клиент
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	if !mailClient.Enabled() {
		log.Warn("SMTP is not configured, confirmation emails are disabled")
	}

	// Хэш пароля администратора
	passwordHash := []byte(cfg.Admin.PasswordHash)
	if len(passwordHash) == 0 {
		passwordHash, err = adminService.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatal("Failed to hash admin password: %v", err)
		}
	}

	// Инициализируем репозитории
	shopRepository := shopRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	leadRepository := leadRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	shopsSvc := shopsService.NewService(shopRepository, catalogRepository, staffRepository, reviewRepository, log)
	leadsSvc := leadsService.NewService(leadRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, shopRepository, staffRepository, catalogRepository, log)
	hoursSvc := hoursService.NewService(shopRepository, staffRepository, txMgr, log)
	adminSvc := adminService.NewService(
		shopRepository,
		staffRepository,
		catalogRepository,
		appointmentRepository,
		sessions,
		txMgr,
		passwordHash,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		staffRepository,
		shopRepository,
		appointmentRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		shopRepository,
		staffRepository,
		catalogRepository,
		getAvailableSlotsUseCase,
		txMgr,
		mailClient,
		metricsCollector,
		log,
	)
	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		sessions,
		shopRepository,
		catalogRepository,
		staffRepository,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookingWizard := bookingWizardHandler.NewHandler(bookingWizardUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listShops := listShopsHandler.NewHandler(shopsSvc, log)
	getShop := getShopHandler.NewHandler(shopsSvc, log)
	addReview := addReviewHandler.NewHandler(shopsSvc, log)
	getLocations := getLocationsHandler.NewHandler(shopsSvc)
	submitLead := submitLeadHandler.NewHandler(leadsSvc, log)
	sessionCookie := middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL(),
		Secure:     cfg.Session.Secure,
	}
	adminSession := adminSessionHandler.NewHandler(adminSvc, sessionCookie, log)
	adminDashboard := adminDashboardHandler.NewHandler(adminSvc, log)
	adminShops := adminShopsHandler.NewHandler(adminSvc, log)
	adminCatalog := adminCatalogHandler.NewHandler(adminSvc, log)
	getShopHours := getShopHoursHandler.NewHandler(hoursSvc, log)
	updateShopHours := updateShopHoursHandler.NewHandler(hoursSvc, log)
	getStaffHours := getStaffHoursHandler.NewHandler(hoursSvc, log)
	updateStaffHours := updateStaffHoursHandler.NewHandler(hoursSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthz.Handle).Methods(http.MethodGet)

	// Ограничение частоты для форм (отзывы, заявки, вход администратора)
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to configure rate limit: %v", err)
		}
		limited = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		go runSweeper(stopCh, func() { limiter.Sweep(rateLimitIdle) })
		log.Info("Rate limit enabled: rps=%.2f, burst=%d, trusted_proxies=%v",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session(sessionCookie))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Салоны ---
	api.HandleFunc("/shops", listShops.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}", getShop.Handle).Methods(http.MethodGet)
	api.Handle("/shops/{shopId:[0-9]+}/reviews", limited(addReview.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)

	// --- Свободное время мастера ---
	api.HandleFunc("/staff/{staffId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Мастер записи ---
	api.HandleFunc("/shops/{shopId:[0-9]+}/book", bookingWizard.Start).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId:[0-9]+}/book/{step}", bookingWizard.View).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}/book/{step}", bookingWizard.Submit).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// --- Заявки бизнеса ---
	api.Handle("/business/leads", limited(submitLead.Handle)).Methods(http.MethodPost)

	// --- Вход администратора ---
	api.Handle("/admin/login", limited(adminSession.Login)).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminSession.Logout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют входа администратора)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminAuth(sessions, log))

	protected.HandleFunc("/dashboard", adminDashboard.Handle).Methods(http.MethodGet)

	// --- Салоны ---
	protected.HandleFunc("/shops", adminShops.Create).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}", adminShops.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/shops/{shopId}/category", adminShops.UpdateCategory).Methods(http.MethodPut)
	protected.HandleFunc("/shops/{shopId}/toggle", adminShops.Toggle).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}/hours", getShopHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shops/{shopId}/hours", updateShopHours.Handle).Methods(http.MethodPut)

	// --- Мастера и услуги ---
	protected.HandleFunc("/staff", adminCatalog.CreateStaff).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/hours", getStaffHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/hours", updateStaffHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services", adminCatalog.CreateService).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновые задачи (метрики пула, очистка сессий)
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}

// runSweeper периодически вызывает sweep до закрытия stopCh
func runSweeper(stopCh <-chan struct{}, sweep func()) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweep()
		case <-stopCh:
			return
		}
	}
}
