package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChristianDVillar/inventory-backend/internal/config"
	"github.com/ChristianDVillar/inventory-backend/internal/dto"
	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrFirstNameRequired = errors.New("The firstName field cannot be empty")
	ErrLastNameRequired  = errors.New("The lastName field cannot be empty")
	ErrEmailRequired     = errors.New("The email field cannot be empty")
	ErrPasswordRequired  = errors.New("The password field cannot be empty")
	ErrUserExists        = errors.New("The user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("User or password invalids")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.FirstName == "" {
		return nil, ErrFirstNameRequired
	}
	if req.LastName == "" {
		return nil, ErrLastNameRequired
	}
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		IsActive:  true,
		Role:      models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	if req.Email == "" {
		return "", ErrEmailRequired
	}
	if req.Password == "" {
		return "", ErrPasswordRequired
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&user)
}

// generateToken issues an HS256 token bound to the user's email,
// expiring after the configured lifetime (one hour by default).
func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Email,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
