package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// ReadyCheck - проверка зависимости шлюза.
type ReadyCheck func(ctx context.Context) error

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe готов, только если отвечают все апстримы.
func ReadinessProbe(checks ...ReadyCheck) fiber.Handler {
	return func(c fiber.Ctx) error {
		for _, check := range checks {
			if err := check(c.Context()); err != nil {
				log.Printf("[HEALTH] not ready: %v", err)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "not ready",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
