package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	stockService *services.StockService
}

func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Msg: "Fields cannot be left empty",
		})
	}

	stock, err := h.stockService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDescriptionRequired) ||
			errors.Is(err, services.ErrQuantityRequired) ||
			errors.Is(err, services.ErrTypeRequired) ||
			errors.Is(err, services.ErrImageRequired) ||
			errors.Is(err, services.ErrInvalidStockType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("stock creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(stock)
}

func (h *StockHandler) Query(c *fiber.Ctx) error {
	var q dto.StockQuery

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid stock ID"})
		}
		v := uint(id)
		q.ID = &v
	}
	q.Description = c.Query("description")
	q.Type = c.Query("type")

	stocks, err := h.stockService.Query(&q)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStockType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		if errors.Is(err, services.ErrStockNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("stock query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(stocks)
}

func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid stock ID"})
	}

	var req dto.UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	stock, err := h.stockService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidStockType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("stock update failed", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(stock)
}

func (h *StockHandler) ListAvailable(c *fiber.Ctx) error {
	stocks, err := h.stockService.ListAvailable()
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: err.Error()})
		}
		slog.Error("available stock listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Msg: "Internal server error",
		})
	}

	return c.JSON(stocks)
}
