package repository

import (
	"github.com/dineshnaiduavula/moviesample/entity"
	"gorm.io/gorm"
)

type StaffRepository struct{ DB *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{DB: db} }

func (r *StaffRepository) GetByEmail(email string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("email = ?", email).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
