package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserUUIDHandler struct {
	uuidService *services.UserUUIDService
}

func NewUserUUIDHandler(uuidService *services.UserUUIDService) *UserUUIDHandler {
	return &UserUUIDHandler{uuidService: uuidService}
}

func (h *UserUUIDHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserUUIDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	record, err := h.uuidService.Create(req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("user uuid creation failed", "error", err, "user_id", req.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *UserUUIDHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid UserUUID ID"})
	}

	record, err := h.uuidService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserUUIDNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("user uuid lookup failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(record)
}

func (h *UserUUIDHandler) List(c *fiber.Ctx) error {
	records, err := h.uuidService.List()
	if err != nil {
		slog.Error("user uuid listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(records)
}
