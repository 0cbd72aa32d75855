package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo   *repository.ProgressRepository
	ModuleRepo     *repository.ModuleRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, moduleRepo *repository.ModuleRepository, enrollmentRepo *repository.EnrollmentRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo:   progressRepo,
		ModuleRepo:     moduleRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *ProgressService) GetByUser(userID uint) ([]model.ProgressRecord, error) {
	return s.ProgressRepo.GetByUser(userID)
}

// SetWatched resolves the lesson chain before writing so a stale or
// mismatched tuple answers 404 instead of minting an orphan row. The
// write itself is an idempotent upsert.
func (s *ProgressService) SetWatched(userID, courseID, moduleID, lessonID uint, watched bool) error {
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("module not found")
		}
		return err
	}
	if module.CourseID != courseID {
		return util.NotFoundErr("module not found in course")
	}

	lesson, err := s.ModuleRepo.FindLessonByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("lesson not found")
		}
		return err
	}
	if lesson.ModuleID != moduleID {
		return util.NotFoundErr("lesson not found in module")
	}

	return s.ProgressRepo.SetWatched(userID, courseID, moduleID, lessonID, watched)
}

// CourseProgressSummary is the admin dashboard: every actively enrolled
// student with their completion percentage for the course.
func (s *ProgressService) CourseProgressSummary(courseID uint) ([]model.StudentProgress, error) {
	students, err := s.EnrollmentRepo.ActiveStudentsByCourse(courseID)
	if err != nil {
		return nil, err
	}

	total, err := s.ProgressRepo.CountLessons(courseID)
	if err != nil {
		return nil, err
	}

	summary := make([]model.StudentProgress, 0, len(students))
	for _, student := range students {
		percent := 0
		if total > 0 {
			watched, err := s.ProgressRepo.CountWatched(student.ID, courseID)
			if err != nil {
				return nil, err
			}
			percent = int(watched * 100 / total)
		}
		summary = append(summary, model.StudentProgress{
			ID:       student.ID,
			Name:     student.Name,
			Progress: percent,
		})
	}
	return summary, nil
}
