package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"warehouse-console/internal/warehouse/location"
	"warehouse-console/internal/warehouse/models"
	"warehouse-console/internal/warehouse/service"
)

// ============================================================
// Stock & Layout Handlers
// ============================================================

type replaceStockRequest struct {
	Records []models.StockRecord `json:"records" validate:"required,max=100000,dive"`
}

// ListWarehouses отдает склады с загруженными остатками.
func (h *Handler) ListWarehouses(c fiber.Ctx) error {
	ids, err := h.store.ListWarehouses(c.Context())
	if err != nil {
		return h.storeError(c, "STOCK", err)
	}
	return c.JSON(fiber.Map{"warehouses": ids})
}

// ReplaceStock заменяет остатки склада и пересобирает открытые на него виды.
func (h *Handler) ReplaceStock(c fiber.Ctx) error {
	warehouseID := c.Params("warehouse")

	var req replaceStockRequest
	if ok, err := h.decodeBody(c, &req); !ok {
		return err
	}

	if err := h.store.ReplaceStock(c.Context(), warehouseID, req.Records); err != nil {
		return h.storeError(c, "STOCK", err)
	}
	log.Printf("[STOCK] %s: stored %d records", warehouseID, len(req.Records))

	refreshed := h.refreshViews(c.Context(), warehouseID)
	return c.JSON(fiber.Map{
		"warehouse":       warehouseID,
		"records":         len(req.Records),
		"views_refreshed": refreshed,
	})
}

// GetStock отдает сырые строки остатков в исходном порядке.
func (h *Handler) GetStock(c fiber.Ctx) error {
	records, err := h.store.ListStock(c.Context(), c.Params("warehouse"))
	if err != nil {
		return h.storeError(c, "STOCK", err)
	}
	return c.JSON(fiber.Map{"records": records})
}

func (h *Handler) DeleteWarehouse(c fiber.Ctx) error {
	if err := h.store.DeleteWarehouse(c.Context(), c.Params("warehouse")); err != nil {
		return h.storeError(c, "STOCK", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetLayout собирает пространственную модель склада.
func (h *Handler) GetLayout(c fiber.Ctx) error {
	cfg, err := h.layoutFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	model, err := h.layouts.Load(c.Context(), c.Params("warehouse"), cfg)
	if err != nil {
		return h.storeError(c, "LAYOUT", err)
	}
	if len(model.Dropped) > 0 {
		log.Printf("[LAYOUT] %s: dropped %d records with malformed location codes", model.Warehouse, len(model.Dropped))
	}
	return c.JSON(model)
}

// GetSlot отдает содержимое одной ячейки (для осмотра ячейки).
func (h *Handler) GetSlot(c fiber.Ctx) error {
	code, err := location.Canonical(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	model, err := h.layouts.Load(c.Context(), c.Params("warehouse"), h.defaults)
	if err != nil {
		return h.storeError(c, "LAYOUT", err)
	}

	slot, ok := model.Scene.Slot(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "slot not found"})
	}
	return c.JSON(slot)
}

// refreshViews пересобирает модель для каждого открытого на склад вида.
func (h *Handler) refreshViews(ctx context.Context, warehouseID string) int {
	views := h.sessions.ForWarehouse(warehouseID)
	if len(views) == 0 {
		return 0
	}

	records, err := h.store.ListStock(ctx, warehouseID)
	if err != nil {
		log.Printf("[VIEW] refresh %s: %v", warehouseID, err)
		return 0
	}

	for _, v := range views {
		v.Refresh(service.Assemble(warehouseID, records, v.Config))
	}
	return len(views)
}
