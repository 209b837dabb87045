package handlers

import (
	"errors"
	"log/slog"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/middleware"
	"github.com/ChristianDVillar/inventory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user. Admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		slog.Error("user listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(users)
}

// UpdateProfile updates the authenticated user's own name fields.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Unauthorized"})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	user, err := h.userService.UpdateProfile(email, &req)
	if err != nil {
		if errors.Is(err, services.ErrFirstNameRequired) || errors.Is(err, services.ErrLastNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("profile update failed", "error", err, "user_email", email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(user)
}
