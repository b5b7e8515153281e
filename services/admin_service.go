package services

import (
	"errors"
	"net/http"
	"time"

	"aquavalle-backend/config"
	"aquavalle-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// AdminService authenticates administrators and issues access tokens.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func errInvalidCredentials() *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    "invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Login verifies the password against the stored bcrypt hash and returns a
// signed HS256 access token.
func (s *AdminService) Login(email, password string) (string, *models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials()
		}
		return "", nil, ErrStore(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials()
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      admin.Email,
		"admin_id": admin.ID,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, ErrStore(err)
	}
	return token, &admin, nil
}
