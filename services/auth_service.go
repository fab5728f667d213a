package services

import (
	"errors"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	StaffRepo *repository.StaffRepository
}

func NewAuthService(sr *repository.StaffRepository) *AuthService {
	return &AuthService{StaffRepo: sr}
}

// Login checks staff credentials. The caller issues the token.
func (s *AuthService) Login(email, password string) (*entity.Staff, error) {
	staff, err := s.StaffRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil { return nil, err }

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return staff, nil
}
