package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) ListStudents() ([]model.User, error) {
	return s.UserRepo.ListStudents()
}

func (s *UserService) FindByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateSelf changes the user's own name and/or password. A password
// change requires the current password to match.
func (s *UserService) UpdateSelf(id uint, name, currentPassword, newPassword string) (*model.User, error) {
	if name == "" && newPassword == "" {
		return nil, util.ValidationErr("nothing to update")
	}

	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if newPassword != "" {
		if currentPassword == "" {
			return nil, util.ValidationErr("current password is required")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
			return nil, util.AuthErr("current password does not match")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.UserRepo.UpdatePassword(id, string(hash)); err != nil {
			return nil, err
		}
	}

	if name != "" {
		if err := s.UserRepo.UpdateName(id, name); err != nil {
			return nil, err
		}
		user.Name = name
	}
	return user, nil
}
