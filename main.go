package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capi/forwarder/api"
	"capi/forwarder/buildinfo"
	"capi/forwarder/config"
	"capi/forwarder/database"
	"capi/forwarder/services"

	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	_ "capi/forwarder/docs" // Import generated docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title Facebook Conversions API Forwarder
// @version 1.0
// @description Maps normalized analytics events onto the Facebook Conversions API schema, hashes PII per the API privacy contract, and forwards them to the configured pixel
// @BasePath /
// @schemes http

const idleTimeout = 5 * time.Second

func main() {
	// Set application start time for accurate uptime tracking
	buildinfo.SetStartTime(time.Now())

	// Log build information
	info := buildinfo.GetInfo()
	log.Printf("Starting application\nVersion: %s, Commit: %s, BuildDate: %s, GoVersion: %s, Hostname: %s",
		info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Hostname)

	// Load .env if present, then configuration from the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the optional delivery audit log
	var auditDB *database.ClickHouseDB
	if cfg.ClickHouse.Enabled {
		if err := database.InitClickHouse(&cfg.ClickHouse); err != nil {
			log.Fatalf("Failed to initialize ClickHouse: %v", err)
		}
		db := database.GetClickHouseDB()
		auditDB = &db
	}

	// Initialize the optional delivery stats counters
	var stats *database.StatsRedis
	if cfg.Redis.Enabled {
		if err := database.InitRedis(&cfg.Redis); err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		stats = database.GetStatsRedis()
	}

	forwardService, err := services.NewForwardService(cfg, auditDB, stats)
	if err != nil {
		log.Fatalf("Failed to initialize ForwardService: %v", err)
	}

	httpHandler := api.NewForwardHandler(forwardService, stats)

	app := fiber.New(fiber.Config{
		IdleTimeout: idleTimeout,
	})

	app.Use(recover.New())

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	// Health check endpoint
	app.Get("/health", api.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Forwarding endpoints
	app.Post("/events", httpHandler.PostEvent)
	app.Get("/stats", httpHandler.GetStats)

	// Listen from a different goroutine
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)                    // Create channel to signify a signal being sent
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // When an interrupt or termination signal is sent, notify the channel

	<-c // This blocks the main thread until an interrupt is received
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Running cleanup tasks...")

	// Shutdown the forward service auditor (flushes remaining records)
	if err := services.ShutdownForwardService(forwardService); err != nil {
		log.Printf("Error shutting down forward service auditor: %v", err)
	}

	// Close database connections
	if cfg.ClickHouse.Enabled {
		if err := database.CloseClickHouse(); err != nil {
			log.Printf("Error closing ClickHouse: %v", err)
		}
	}
	if cfg.Redis.Enabled {
		if err := database.CloseRedis(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}

	fmt.Println("Fiber was successful shutdown.")
}
