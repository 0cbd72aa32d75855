package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type TestService struct {
	TestRepo       *repository.TestRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewTestService(testRepo *repository.TestRepository, courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository) *TestService {
	return &TestService{
		TestRepo:       testRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *TestService) ListForUser(userID uint) ([]model.Test, error) {
	courseIDs, err := s.EnrollmentRepo.ActiveCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []model.Test{}, nil
	}
	return s.TestRepo.ListByCourses(courseIDs)
}

func (s *TestService) Create(test *model.Test) error {
	if test.Title == "" || test.Description == "" {
		return util.ValidationErr("title and description are required")
	}
	if _, err := s.CourseRepo.FindByID(test.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}
	return s.TestRepo.Create(test)
}

func (s *TestService) Update(id uint, status string, grade *float64) (*model.Test, error) {
	if status == "" {
		return nil, util.ValidationErr("status is required")
	}
	test, err := s.TestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("test not found")
		}
		return nil, err
	}

	test.Status = status
	if grade != nil {
		test.Grade = grade
	}
	if err := s.TestRepo.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) Delete(id uint) error {
	err := s.TestRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundErr("test not found")
	}
	return err
}
