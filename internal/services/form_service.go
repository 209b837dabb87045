package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInitialDateRequired = errors.New("The initialDate field cannot be empty")
	ErrFinalDateRequired   = errors.New("The finalDate field cannot be empty")
	ErrUserIDRequired      = errors.New("The userId field cannot be empty")
	ErrInvalidDate         = errors.New("Invalid date, expected YYYY-MM-DD")
	ErrInvalidDetailType   = errors.New("Invalid detail type")
	ErrUserNotFound        = errors.New("User not found")
)

const dateLayout = "2006-01-02"

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

// Create persists a form together with all of its details in a single
// transaction. If any detail fails validation or insertion, nothing is
// left behind.
func (s *FormService) Create(req *dto.CreateFormRequest) (*models.Form, error) {
	if req.InitialDate == "" {
		return nil, ErrInitialDateRequired
	}
	if req.FinalDate == "" {
		return nil, ErrFinalDateRequired
	}
	if req.UserID == 0 {
		return nil, ErrUserIDRequired
	}

	initialDate, err := time.Parse(dateLayout, req.InitialDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	finalDate, err := time.Parse(dateLayout, req.FinalDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	form := models.Form{
		InitialDate: initialDate,
		FinalDate:   finalDate,
		UserID:      req.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user: %w", err)
		}

		if err := tx.Create(&form).Error; err != nil {
			return fmt.Errorf("failed to create form: %w", err)
		}

		for _, d := range req.Details {
			detailType, err := models.ParseDetailType(d.Type)
			if err != nil {
				return ErrInvalidDetailType
			}

			var stock models.Stock
			if err := tx.First(&stock, d.StockID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStockNotFound
				}
				return fmt.Errorf("failed to load stock: %w", err)
			}

			detail := models.DetailForm{
				FormID:      form.ID,
				StockID:     d.StockID,
				Description: d.Description,
				Quantity:    d.Quantity,
				Type:        detailType,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("failed to create detail: %w", err)
			}
			form.Details = append(form.Details, detail)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &form, nil
}

// List returns every form with its details.
func (s *FormService) List() ([]models.Form, error) {
	var forms []models.Form
	if err := s.db.Preload("Details").Find(&forms).Error; err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}
