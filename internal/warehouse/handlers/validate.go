package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Request validation
// ============================================================

func newValidator() *validator.Validate {
	v := validator.New()

	// в ошибках - имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// decodeBody разбирает JSON-тело и валидирует его.
// При ошибке сам пишет ответ 400 и возвращает false.
func (h *Handler) decodeBody(c fiber.Ctx, dst any) (bool, error) {
	if len(c.Body()) == 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}
	if err := h.validate.Struct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fieldErrors(err),
		})
	}
	return true, nil
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Namespace()] = friendlyMessage(e)
	}
	return out
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "uppercase", "alpha":
		return "must be a single uppercase letter"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
