package main

import (
	"fmt"
	"log"
	"time"

	"warehouse-console/internal/common/config"
	"warehouse-console/internal/common/middleware"
	"warehouse-console/internal/gateway/handlers"
	"warehouse-console/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

const apiPrefix = "/api/v1"

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Warehouse Console Gateway",
	})

	layoutSvc := proxy.NewUpstream("layout", cfg.LayoutURL, time.Duration(cfg.WriteTimeout)*time.Second)

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(middleware.Logger("gateway"))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(layoutSvc.Ready))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs
	// ============================================================

	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec("docs/warehouse.openapi.yaml"))
	app.Get("/docs", handlers.SwaggerUI)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group(apiPrefix)

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Warehouse Console API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	forward := layoutSvc.Handler(apiPrefix)
	api.All("/warehouses", forward)
	api.All("/warehouses/*", forward)
	api.All("/views", forward)
	api.All("/views/*", forward)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying %s/warehouses and %s/views to %s", apiPrefix, apiPrefix, cfg.LayoutURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
