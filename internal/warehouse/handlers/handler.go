package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"warehouse-console/internal/warehouse/models"
	"warehouse-console/internal/warehouse/repository"
	"warehouse-console/internal/warehouse/service"
)

// ============================================================
// Layout Service Handler
// ============================================================

// StockStore - хранилище сырых остатков.
type StockStore interface {
	service.StockSource
	ReplaceStock(ctx context.Context, warehouseID string, records []models.StockRecord) error
	ListWarehouses(ctx context.Context) ([]string, error)
	DeleteWarehouse(ctx context.Context, warehouseID string) error
}

type Handler struct {
	store    StockStore
	layouts  *service.Layouts
	sessions *service.Sessions
	defaults models.LayoutConfig
	validate *validator.Validate
}

func New(store StockStore, sessions *service.Sessions, defaults models.LayoutConfig) *Handler {
	return &Handler{
		store:    store,
		layouts:  service.NewLayouts(store),
		sessions: sessions,
		defaults: defaults,
		validate: newValidator(),
	}
}

// Register вешает маршруты сервиса на роутер.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/warehouses", h.ListWarehouses)
	r.Put("/warehouses/:warehouse/stock", h.ReplaceStock)
	r.Get("/warehouses/:warehouse/stock", h.GetStock)
	r.Delete("/warehouses/:warehouse", h.DeleteWarehouse)
	r.Get("/warehouses/:warehouse/layout", h.GetLayout)
	r.Get("/warehouses/:warehouse/slots/:code", h.GetSlot)

	r.Post("/views", h.CreateView)
	r.Get("/views/:view/frame", h.GetFrame)
	r.Post("/views/:view/aisle", h.SelectAisle)
	r.Post("/views/:view/shelf", h.SelectShelf)
	r.Post("/views/:view/bin", h.InspectBin)
	r.Post("/views/:view/clear-bin", h.ClearBin)
	r.Post("/views/:view/clear", h.Clear)
	r.Post("/views/:view/refresh", h.Refresh)
	r.Delete("/views/:view", h.DeleteView)
}

// ============================================================
// Helpers
// ============================================================

// layoutFromQuery накладывает параметры запроса на конфигурацию по умолчанию.
func (h *Handler) layoutFromQuery(c fiber.Ctx) (models.LayoutConfig, error) {
	cfg := h.defaults

	fields := []struct {
		key string
		dst *float64
	}{
		{"aisle_spacing", &cfg.AisleSpacing},
		{"bay_spacing", &cfg.BaySpacing},
		{"level_height", &cfg.LevelHeight},
		{"origin_x", &cfg.Origin.X},
		{"origin_z", &cfg.Origin.Z},
	}
	for _, f := range fields {
		raw := c.Query(f.key)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, errors.New(f.key + " must be a number")
		}
		*f.dst = val
	}

	return cfg, cfg.Validate()
}

func (h *Handler) storeError(c fiber.Ctx, tag string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "warehouse not found"})
	}
	log.Printf("[%s] store error: %v", tag, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
}
