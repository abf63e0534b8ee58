package auth

import (
	"errors"
	"strings"

	"pewec-api/internal/util"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) GetAdmin(email string) (*AdminUser, error) {
	var user AdminUser
	result := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetAdminByID(id string) (*AdminUser, error) {
	var user AdminUser
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) CreateAdmin(email, password, name string) (*AdminUser, error) {
	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := AdminUser{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
		Name:     name,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("an admin with this email already exists")
		}
		return nil, err
	}

	return &user, nil
}
