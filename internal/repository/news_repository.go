package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) FindAll() ([]model.News, error) {
	var news []model.News
	err := r.DB.Order("id DESC").Find(&news).Error
	return news, err
}

func (r *NewsRepository) Create(news *model.News) error {
	return r.DB.Create(news).Error
}

func (r *NewsRepository) Update(news *model.News) error {
	return r.DB.Save(news).Error
}

func (r *NewsRepository) FindByID(id uint) (*model.News, error) {
	var news model.News
	if err := r.DB.First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
