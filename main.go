package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storeadmin/internal/config"
	"storeadmin/internal/events"
	"storeadmin/internal/handlers"
	"storeadmin/internal/models"
	"storeadmin/internal/store"
	"storeadmin/internal/storeapi"
	"storeadmin/pkg/rabbitmq"
	"storeadmin/pkg/stubapi"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel, cfg.LogJSON)
	defer log.Sync()

	// --- Upstream API ---
	// LOCAL_API swaps the remote store API for an embedded stub with demo
	// data, useful for offline development.
	baseURL := cfg.StoreAPIURL
	if cfg.LocalAPI {
		stub, err := stubapi.New()
		if err != nil {
			log.Fatal("failed to start local API", zap.Error(err))
		}
		url, err := stub.Start()
		if err != nil {
			log.Fatal("failed to start local API", zap.Error(err))
		}
		defer stub.Shutdown()
		seedDemoData(stub, log)
		baseURL = url
		log.Info("using local stub API", zap.String("url", url))
	}

	client := storeapi.NewClient(baseURL, nil, log)

	// --- Activity sinks ---
	recorder := events.NewRecorder(cfg.ActivityFeedSize)
	sinks := events.Fanout{recorder}
	if cfg.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewPublisher(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Fatal("failed to initialize RabbitMQ publisher", zap.Error(err))
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	// --- State store ---
	st := store.New(client, log, sinks)
	defer st.Close()

	// Load the collections in the background so the server comes up even
	// when the upstream is slow or down; failures surface as an error
	// notification and an error slot on the dashboard.
	go func() {
		if err := st.Initialize(context.Background()); err != nil {
			log.Error("initial data load failed", zap.Error(err))
		}
	}()

	// --- HTTP server ---
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	apiV1 := app.Group("/api/v1")
	handlers.NewUserHandler(st, client, log).RegisterRoutes(apiV1)
	handlers.NewProductHandler(st, client, log).RegisterRoutes(apiV1)
	handlers.NewDashboardHandler(st, recorder).RegisterRoutes(apiV1)
	handlers.NewNotificationHandler(st).RegisterRoutes(apiV1)
	handlers.NewThemeHandler().RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"loading": st.Loading(),
		})
	})

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server starting", zap.String("addr", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}

func newLogger(level string, json bool) *zap.Logger {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}
	var zcfg zap.Config
	if json {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

// seedDemoData populates the local stub API with a few records so the
// dashboard is not empty in offline development.
func seedDemoData(stub *stubapi.Server, log *zap.Logger) {
	users := []models.User{
		{
			Email:    "ann.lee@example.com",
			Username: "annlee",
			Password: "secret1",
			Name:     models.Name{Firstname: "Ann", Lastname: "Lee"},
			Address: models.Address{
				City: "Springfield", Street: "Main St", Number: 12, Zipcode: "12926-3874",
				Geolocation: models.Geolocation{Lat: "-37.3159", Long: "81.1496"},
			},
			Phone: "1-570-236-7033",
		},
		{
			Email:    "bo.chen@example.com",
			Username: "bochen",
			Password: "secret2",
			Name:     models.Name{Firstname: "Bo", Lastname: "Chen"},
			Address: models.Address{
				City: "Riverton", Street: "Oak Ave", Number: 7, Zipcode: "90210",
				Geolocation: models.Geolocation{Lat: "40.3467", Long: "-30.1310"},
			},
			Phone: "1-210-555-0182",
		},
	}
	products := []models.Product{
		{Title: "Laptop", Price: 1200.00, Description: "High performance laptop", Category: "electronics", Image: "https://example.com/laptop.png"},
		{Title: "Keyboard", Price: 75.00, Description: "Mechanical keyboard", Category: "electronics", Image: "https://example.com/keyboard.png"},
		{Title: "Silver Ring", Price: 39.90, Description: "Plain silver ring", Category: "jewelery", Image: "https://example.com/ring.png"},
	}

	if err := stub.SeedUsers(users); err != nil {
		log.Warn("failed to seed demo users", zap.Error(err))
	}
	if err := stub.SeedProducts(products); err != nil {
		log.Warn("failed to seed demo products", zap.Error(err))
	}
}
