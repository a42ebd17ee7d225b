package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"warehouse-console/internal/warehouse/camera"
	"warehouse-console/internal/warehouse/location"
	"warehouse-console/internal/warehouse/models"
	"warehouse-console/internal/warehouse/service"
)

// ============================================================
// View Handlers
// ============================================================

type createViewRequest struct {
	Warehouse string               `json:"warehouse" validate:"required,max=64"`
	Layout    *models.LayoutConfig `json:"layout,omitempty"`
}

type aisleRequest struct {
	Row string `json:"row" validate:"required,len=1,alpha,uppercase"`
}

type shelfRequest struct {
	Row    string `json:"row" validate:"required,len=1,alpha,uppercase"`
	Column int    `json:"column" validate:"gte=0"`
}

type binRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

// CreateView открывает новый 3D-вид склада.
func (h *Handler) CreateView(c fiber.Ctx) error {
	var req createViewRequest
	if ok, err := h.decodeBody(c, &req); !ok {
		return err
	}

	cfg := h.defaults
	if req.Layout != nil {
		cfg = *req.Layout
		if err := cfg.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	model, err := h.layouts.Load(c.Context(), req.Warehouse, cfg)
	if err != nil {
		return h.storeError(c, "VIEW", err)
	}

	view := h.sessions.Create(model)

	// вид без доставленного клиенту ID никто не закроет
	if err := c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"frame":  view.Frame(),
		"layout": model,
	}); err != nil {
		_ = h.sessions.Delete(view.ID)
		log.Printf("[VIEW] encode %s failed, view discarded: %v", view.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode view"})
	}

	log.Printf("[VIEW] created %s for %s (%d slots)", view.ID, model.Warehouse, len(model.Scene.Slots))
	return nil
}

func (h *Handler) GetFrame(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}
	return c.JSON(view.Frame())
}

func (h *Handler) SelectAisle(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}

	var req aisleRequest
	if ok, err := h.decodeBody(c, &req); !ok {
		return err
	}

	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.SelectAisle(req.Row, now)
	}))
}

func (h *Handler) SelectShelf(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}

	var req shelfRequest
	if ok, err := h.decodeBody(c, &req); !ok {
		return err
	}

	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.SelectShelf(req.Row, req.Column, now)
	}))
}

// InspectBin принимает код в любом допустимом написании: B0032 приводится к B032.
func (h *Handler) InspectBin(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}

	var req binRequest
	if ok, err := h.decodeBody(c, &req); !ok {
		return err
	}

	code, err := location.Canonical(req.Code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.InspectBin(code, now)
	}))
}

func (h *Handler) ClearBin(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}
	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.ClearBin(now)
	}))
}

func (h *Handler) Clear(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}
	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.Clear(now)
	}))
}

// Refresh перечитывает остатки и пересобирает сцену вида.
func (h *Handler) Refresh(c fiber.Ctx) error {
	view, ok, err := h.view(c)
	if !ok {
		return err
	}

	model, err := h.layouts.Load(c.Context(), view.Warehouse, view.Config)
	if err != nil {
		return h.storeError(c, "VIEW", err)
	}
	return c.JSON(view.Do(func(ctl *camera.Controller, now time.Duration) {
		ctl.Rebuild(model.Scene, now)
	}))
}

func (h *Handler) DeleteView(c fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("view")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// view достает вид из пути; при отсутствии сам отвечает 404 и возвращает false.
func (h *Handler) view(c fiber.Ctx) (*service.View, bool, error) {
	view, err := h.sessions.Get(c.Params("view"))
	if err != nil {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return view, true, nil
}
