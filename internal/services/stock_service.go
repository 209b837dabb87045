package services

import (
	"errors"
	"fmt"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDescriptionRequired = errors.New("The description field cannot be empty")
	ErrQuantityRequired    = errors.New("The quantity field cannot be empty")
	ErrTypeRequired        = errors.New("The type field cannot be empty")
	ErrImageRequired       = errors.New("The image field cannot be empty")
	ErrInvalidStockType    = errors.New("Invalid stock type")
	ErrStockNotFound       = errors.New("Stock not found")
)

type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

func (s *StockService) Create(req *dto.CreateStockRequest) (*models.Stock, error) {
	if req.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Quantity == nil {
		return nil, ErrQuantityRequired
	}
	if req.Type == "" {
		return nil, ErrTypeRequired
	}
	if req.Image == "" {
		return nil, ErrImageRequired
	}

	stockType, err := models.ParseStockType(req.Type)
	if err != nil {
		return nil, ErrInvalidStockType
	}

	stock := models.Stock{
		Description: req.Description,
		Quantity:    *req.Quantity,
		Type:        stockType,
		Image:       req.Image,
	}

	if err := s.db.Create(&stock).Error; err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return &stock, nil
}

// Query applies the optional filters conjunctively. The description
// filter is a case-sensitive substring match.
func (s *StockService) Query(q *dto.StockQuery) ([]models.Stock, error) {
	tx := s.db.Model(&models.Stock{})

	if q.ID != nil {
		tx = tx.Where("id = ?", *q.ID)
	}
	if q.Description != "" {
		tx = tx.Where("description LIKE ?", "%"+q.Description+"%")
	}
	if q.Type != "" {
		stockType, err := models.ParseStockType(q.Type)
		if err != nil {
			return nil, ErrInvalidStockType
		}
		tx = tx.Where("type = ?", stockType)
	}

	var stocks []models.Stock
	if err := tx.Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	if len(stocks) == 0 {
		return nil, ErrStockNotFound
	}

	return stocks, nil
}

// Update applies a partial update: only non-nil request fields overwrite
// the stored record.
func (s *StockService) Update(id uint, req *dto.UpdateStockRequest) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}

	if req.Description != nil {
		stock.Description = *req.Description
	}
	if req.Quantity != nil {
		stock.Quantity = *req.Quantity
	}
	if req.Type != nil {
		stockType, err := models.ParseStockType(*req.Type)
		if err != nil {
			return nil, ErrInvalidStockType
		}
		stock.Type = stockType
	}
	if req.Image != nil {
		stock.Image = *req.Image
	}

	if err := s.db.Save(&stock).Error; err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return &stock, nil
}

// ListAvailable returns every stock row with quantity > 0.
func (s *StockService) ListAvailable() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := s.db.Where("quantity > 0").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list available stock: %w", err)
	}
	if len(stocks) == 0 {
		return nil, ErrStockNotFound
	}
	return stocks, nil
}
