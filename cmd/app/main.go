package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/sequencerepo"
	"orderdesk/internal/adapters/out/postgres/trailrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultSequenceStart    = 2000000
	defaultStaleReviewAfter = 45 * time.Minute
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrate(gormDB)
	seedSequenceCounter(gormDB, configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(staleReviewAfter(configs), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		SequenceStart:    os.Getenv("SEQUENCE_START"),
		StaleReviewAfter: os.Getenv("STALE_REVIEW_AFTER"),
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&trailrepo.StatusHistoryDTO{},
		&trailrepo.AuditLogDTO{},
		&sequencerepo.SequenceRowDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func seedSequenceCounter(gormDB *gorm.DB, configs cmd.Config) {
	startValue := int64(defaultSequenceStart)
	if configs.SequenceStart != "" {
		parsed, err := strconv.ParseInt(configs.SequenceStart, 10, 64)
		if err != nil {
			log.Fatalf("Invalid SEQUENCE_START value: %v", err)
		}
		startValue = parsed
	}

	counter := sequencerepo.NewGormSequenceCounter(gormDB)
	if err := counter.EnsureRow(context.Background(), startValue); err != nil {
		log.Fatalf("Failed to seed sequence counter: %v", err)
	}
}

func staleReviewAfter(configs cmd.Config) time.Duration {
	if configs.StaleReviewAfter == "" {
		return defaultStaleReviewAfter
	}

	staleAfter, err := time.ParseDuration(configs.StaleReviewAfter)
	if err != nil {
		log.Fatalf("Invalid STALE_REVIEW_AFTER value: %v", err)
	}
	return staleAfter
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateOpenOrderCommandHandler(),
		app.CreateValidateOrderCommandHandler(),
		app.CreateExportOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRestoreOrderCommandHandler(),
		app.CreateConfirmErpProcessedCommandHandler(),
		app.CreateSetLineStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
