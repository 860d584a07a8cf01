package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aandreu7/iNutriScan/models"
)

// UserService reads user profiles. Accounts are written by the auth
// frontend, never from here.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the user's profile, or nil when the user has no
// profile document. Absence is not an error: handlers degrade to an
// empty prompt context and a zero kcal target.
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile for user %s: %w", userID, err)
	}
	return &user, nil
}
