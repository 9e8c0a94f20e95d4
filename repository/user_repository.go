package repository

import (
	"github.com/Nachiketh1704/InternHub/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// หา admin คนแรก (ระบบนี้คาดว่ามีคนเดียว)
func (r *UserRepository) FindAdmin() (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("role = ?", "admin").First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
