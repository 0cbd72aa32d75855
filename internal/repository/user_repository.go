package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateName(id uint, name string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("name", name).Error
}

func (r *UserRepository) UpdatePassword(id uint, hash string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *UserRepository) ListStudents() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Student).Find(&users).Error
	return users, err
}
