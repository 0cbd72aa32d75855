package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type GradeService struct {
	GradeRepo  *repository.GradeRepository
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
}

func NewGradeService(gradeRepo *repository.GradeRepository, userRepo *repository.UserRepository, courseRepo *repository.CourseRepository) *GradeService {
	return &GradeService{
		GradeRepo:  gradeRepo,
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
	}
}

func (s *GradeService) Create(grade *model.Grade) error {
	if grade.Value < 0 {
		return util.ValidationErr("grade cannot be negative")
	}
	if _, err := s.UserRepo.FindByID(grade.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("user not found")
		}
		return err
	}
	if _, err := s.CourseRepo.FindByID(grade.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}
	return s.GradeRepo.Create(grade)
}

func (s *GradeService) ListOwn(userID uint) ([]model.Grade, error) {
	return s.GradeRepo.ListByUser(userID)
}
