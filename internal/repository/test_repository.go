package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestRepository) ListByCourses(courseIDs []uint) ([]model.Test, error) {
	var tests []model.Test
	if len(courseIDs) == 0 {
		return tests, nil
	}
	err := r.DB.Where("course_id IN ?", courseIDs).Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) Update(test *model.Test) error {
	return r.DB.Save(test).Error
}

func (r *TestRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Test{}, id).Error
}
