package handlers

import (
	"errors"
	"log/slog"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

func (h *FormHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Msg: "Fields cannot be left empty",
		})
	}

	form, err := h.formService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInitialDateRequired) ||
			errors.Is(err, services.ErrFinalDateRequired) ||
			errors.Is(err, services.ErrUserIDRequired) ||
			errors.Is(err, services.ErrInvalidDate) ||
			errors.Is(err, services.ErrInvalidDetailType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrStockNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("form creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(form)
}

func (h *FormHandler) List(c *fiber.Ctx) error {
	forms, err := h.formService.List()
	if err != nil {
		slog.Error("form listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(forms)
}
