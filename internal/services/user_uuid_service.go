package services

import (
	"errors"
	"fmt"

	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserUUIDNotFound = errors.New("UserUUID not found")

type UserUUIDService struct {
	db *gorm.DB
}

func NewUserUUIDService(db *gorm.DB) *UserUUIDService {
	return &UserUUIDService{db: db}
}

// Create makes a new identifier record for an existing user.
func (s *UserUUIDService) Create(userID uint) (*models.UserUUID, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	record := models.UserUUID{
		UserID: userID,
		Value:  uuid.New(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create user uuid: %w", err)
	}

	return &record, nil
}

func (s *UserUUIDService) Get(id uint) (*models.UserUUID, error) {
	var record models.UserUUID
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserUUIDNotFound
		}
		return nil, fmt.Errorf("failed to load user uuid: %w", err)
	}
	return &record, nil
}

func (s *UserUUIDService) List() ([]models.UserUUID, error) {
	var records []models.UserUUID
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list user uuids: %w", err)
	}
	return records, nil
}
