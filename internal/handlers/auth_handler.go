package handlers

import (
	"errors"
	"log/slog"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Msg: "Fields cannot be left empty",
		})
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, services.ErrFirstNameRequired) ||
			errors.Is(err, services.ErrLastNameRequired) ||
			errors.Is(err, services.ErrEmailRequired) ||
			errors.Is(err, services.ErrPasswordRequired) ||
			errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("registration failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Msg: "New User Created"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Msg: "Fields cannot be left empty",
		})
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) ||
			errors.Is(err, services.ErrPasswordRequired) ||
			errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(dto.LoginResponse{Msg: "ok", Token: token})
}
