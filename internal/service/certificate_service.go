package service

import (
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"buriti_backend/pkg/monitoring"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CertificateService derives completion from the live lesson set and the
// progress records; nothing is cached, so catalog edits take effect on
// the next request.
type CertificateService struct {
	ProgressRepo *repository.ProgressRepository
	CourseRepo   *repository.CourseRepository
}

func NewCertificateService(progressRepo *repository.ProgressRepository, courseRepo *repository.CourseRepository) *CertificateService {
	return &CertificateService{
		ProgressRepo: progressRepo,
		CourseRepo:   courseRepo,
	}
}

// IsEligible reports whether the user has watched every current lesson
// of the course. A course with no lessons is never complete.
func (s *CertificateService) IsEligible(userID, courseID uint) (bool, error) {
	total, err := s.ProgressRepo.CountLessons(courseID)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}

	watched, err := s.ProgressRepo.CountWatched(userID, courseID)
	if err != nil {
		return false, err
	}
	return watched == total, nil
}

// CertificateText issues the completion certificate body, refusing with
// 403 when the course is not fully watched.
func (s *CertificateService) CertificateText(userID uint, userName string, courseID uint) (string, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.NotFoundErr("course not found")
		}
		return "", err
	}

	eligible, err := s.IsEligible(userID, courseID)
	if err != nil {
		return "", err
	}
	if !eligible {
		return "", util.ForbiddenErr("course not yet completed")
	}

	monitoring.CertificatesIssued.Inc()
	return fmt.Sprintf("Certificado de conclusão: %s - Aluno(a): %s", course.Title, userName), nil
}
