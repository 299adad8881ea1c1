package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkEligibilityHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/check_eligibility"
	createBookingDraftHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/create_booking_draft"
	createProvisionalBookingHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/create_provisional_booking"
	getCarPricingHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/get_car_pricing"
	getManufacturerCarsHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/get_manufacturer_cars"
	getManufacturersHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/get_manufacturers"
	getNearestSlotsHandler "github.com/ksudate/WFC-BookingService/internal/api/handlers/get_nearest_slots"
	"github.com/ksudate/WFC-BookingService/internal/api/middleware"
	"github.com/ksudate/WFC-BookingService/internal/config"
	calendarInfra "github.com/ksudate/WFC-BookingService/internal/infra/calendar"
	pricingInfra "github.com/ksudate/WFC-BookingService/internal/infra/pricing"
	"github.com/ksudate/WFC-BookingService/internal/integrations/googlecalendar"
	"github.com/ksudate/WFC-BookingService/internal/integrations/googlesheets"
	availabilityService "github.com/ksudate/WFC-BookingService/internal/service/availability"
	pricingService "github.com/ksudate/WFC-BookingService/internal/service/pricing"
	checkEligibilityUC "github.com/ksudate/WFC-BookingService/internal/usecase/check_booking_eligibility"
	createBookingDraftUC "github.com/ksudate/WFC-BookingService/internal/usecase/create_booking_draft"
	createProvisionalBookingUC "github.com/ksudate/WFC-BookingService/internal/usecase/create_provisional_booking"
	getNearestSlotsUC "github.com/ksudate/WFC-BookingService/internal/usecase/get_nearest_slots"
	"github.com/ksudate/WFC-BookingService/pkg/logger"
	"github.com/ksudate/WFC-BookingService/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (файл опционален)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Printf("Failed to load environment: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting WFC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов Google API
	tokenSource := googlecalendar.NewStaticTokenSource(env.GoogleAPIToken)

	calendarClient := googlecalendar.NewClient(
		cfg.GoogleCalendar.URL,
		time.Duration(cfg.GoogleCalendar.Timeout)*time.Second,
		tokenSource,
		log,
		metricsCollector,
	)
	sheetsClient := googlesheets.NewClient(
		cfg.GoogleSheets.URL,
		time.Duration(cfg.GoogleSheets.Timeout)*time.Second,
		tokenSource,
		log,
		metricsCollector,
	)
	log.Info("Google API clients initialized (Calendar=%s timeout=%ds, Sheets=%s timeout=%ds)",
		cfg.GoogleCalendar.URL, cfg.GoogleCalendar.Timeout, cfg.GoogleSheets.URL, cfg.GoogleSheets.Timeout)

	// Инициализируем инфраструктурные адаптеры.
	// Календарь - единственный источник правды о занятых слотах.
	eventQuery := calendarInfra.NewEventQuery(calendarClient, env.GoogleCalendarID, log)
	eventRepo := calendarInfra.NewEventRepository(calendarClient, env.GoogleCalendarID, log)
	sheetPricingQuery := pricingInfra.NewSheetPricingQuery(sheetsClient, env.GoogleSpreadsheetID, log)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(eventQuery, log)
	pricingSvc := pricingService.NewService(sheetPricingQuery, log)

	// Инициализируем use cases
	checkEligibilityUseCase := checkEligibilityUC.NewUseCase(eventQuery, availabilitySvc, log)
	getNearestSlotsUseCase := getNearestSlotsUC.NewUseCase(eventQuery, log)
	createProvisionalBookingUseCase := createProvisionalBookingUC.NewUseCase(eventQuery, availabilitySvc, eventRepo, log)
	createBookingDraftUseCase := createBookingDraftUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	checkEligibility := checkEligibilityHandler.NewHandler(checkEligibilityUseCase, log)
	getNearestSlots := getNearestSlotsHandler.NewHandler(getNearestSlotsUseCase, log)
	createProvisionalBooking := createProvisionalBookingHandler.NewHandler(createProvisionalBookingUseCase, log)
	createBookingDraft := createBookingDraftHandler.NewHandler(createBookingDraftUseCase, log)
	getManufacturers := getManufacturersHandler.NewHandler(pricingSvc, log)
	getManufacturerCars := getManufacturerCarsHandler.NewHandler(pricingSvc, log)
	getCarPricing := getCarPricingHandler.NewHandler(pricingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Проверка возможности бронирования слота
	api.HandleFunc("/bookings/eligibility", checkEligibility.Handle).Methods(http.MethodGet)

	// Поиск ближайших свободных слотов
	api.HandleFunc("/bookings/nearest-slots", getNearestSlots.Handle).Methods(http.MethodGet)

	// Создание предварительного бронирования (занимает слот в календаре)
	api.HandleFunc("/bookings/provisional", createProvisionalBooking.Handle).Methods(http.MethodPost)

	// Создание черновика бронирования
	api.HandleFunc("/bookings/draft", createBookingDraft.Handle).Methods(http.MethodPost)

	// --- Прайс-лист ---
	api.HandleFunc("/pricing/manufacturers", getManufacturers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/manufacturers/{manufacturerId}/cars", getManufacturerCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/cars/{carId}", getCarPricing.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
