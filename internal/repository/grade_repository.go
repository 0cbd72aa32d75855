package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

func (r *GradeRepository) Create(grade *model.Grade) error {
	return r.DB.Create(grade).Error
}

func (r *GradeRepository) ListByUser(userID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.DB.Where("user_id = ?", userID).Find(&grades).Error
	return grades, err
}
