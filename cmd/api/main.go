package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hygiene-check-api/internal/config"
	"github.com/hygiene-check-api/internal/database"
	"github.com/hygiene-check-api/internal/handler"
	"github.com/hygiene-check-api/internal/repository"
	"github.com/hygiene-check-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	tx := repository.NewTransactor(db)
	officeRepo := repository.NewOfficeRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	itemRepo := repository.NewRecordItemRepository(db)
	confirmRepo := repository.NewConfirmationRepository(db)

	// Инициализация сервисов
	officeService := service.NewOfficeService(officeRepo)
	empService := service.NewEmployeeService(empRepo, officeRepo)
	recordService := service.NewRecordService(tx, recordRepo, itemRepo, confirmRepo, empRepo)
	dashboardService := service.NewDashboardService(empRepo, recordRepo)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Offices:    handler.NewOfficeHandler(officeService, logger),
		Employees:  handler.NewEmployeeHandler(empService, logger),
		Records:    handler.NewRecordHandler(recordService, logger),
		Dashboard:  handler.NewDashboardHandler(dashboardService, logger),
		Categories: handler.NewCategoryHandler(logger),
	}, cfg.Server.CORSAllowedOrigins, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
