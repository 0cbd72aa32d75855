package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// EnrollmentService is both the enrollment CRUD surface and the access
// guard every course-scoped operation consults.
type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
	DB             *gorm.DB
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
		DB:             db,
	}
}

func (s *EnrollmentService) CanAccess(userID, courseID uint) (bool, error) {
	return s.EnrollmentRepo.HasActive(userID, courseID)
}

// RequireActiveEnrollment re-derives the entitlement from the store on
// every call. Callers must have resolved the course (404) before asking,
// so a failure here is always a clean 403.
func (s *EnrollmentService) RequireActiveEnrollment(userID, courseID uint) error {
	ok, err := s.EnrollmentRepo.HasActive(userID, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ForbiddenErr("user not enrolled in course")
	}
	return nil
}

func (s *EnrollmentService) ListOwn(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByUser(userID)
}

// Create rejects a second active enrollment for the same (user, course).
// The legacy schema never enforced this; the check-and-insert runs inside
// one transaction so concurrent creates cannot both pass.
func (s *EnrollmentService) Create(enrollment *model.Enrollment) error {
	if _, err := s.UserRepo.FindByID(enrollment.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("user not found")
		}
		return err
	}
	if _, err := s.CourseRepo.FindByID(enrollment.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}

	if enrollment.Status == "" {
		enrollment.Status = model.EnrollmentActive
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if enrollment.Status == model.EnrollmentActive {
			var count int64
			if err := tx.Model(&model.Enrollment{}).
				Where("user_id = ? AND course_id = ? AND status = ?",
					enrollment.UserID, enrollment.CourseID, model.EnrollmentActive).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return util.ConflictErr("user already holds an active enrollment in this course")
			}
		}
		return tx.Create(enrollment).Error
	})
}

func (s *EnrollmentService) UpdateStatus(id uint, status model.EnrollmentStatus) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("enrollment not found")
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if status == model.EnrollmentActive {
			var count int64
			if err := tx.Model(&model.Enrollment{}).
				Where("user_id = ? AND course_id = ? AND status = ? AND id != ?",
					enrollment.UserID, enrollment.CourseID, model.EnrollmentActive, enrollment.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return util.ConflictErr("user already holds an active enrollment in this course")
			}
		}
		enrollment.Status = status
		return tx.Save(enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Delete(id uint) error {
	err := s.EnrollmentRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundErr("enrollment not found")
	}
	return err
}

func (s *EnrollmentService) ActiveStudentsByCourse(courseID uint) ([]model.User, error) {
	return s.EnrollmentRepo.ActiveStudentsByCourse(courseID)
}

func (s *EnrollmentService) CourseRoster(courseID uint) ([]repository.RosterEntry, error) {
	return s.EnrollmentRepo.CourseRoster(courseID)
}

// Classmate is a fellow student plus the course titles shared with the
// caller.
type Classmate struct {
	ID      uint           `json:"id"`
	Name    string         `json:"nome"`
	Email   string         `json:"email"`
	Role    model.UserRole `json:"role"`
	Courses []string       `json:"cursos"`
}

// Classmates lists the users sharing at least one active enrollment with
// the caller, with the shared course titles attached.
func (s *EnrollmentService) Classmates(userID uint) ([]Classmate, error) {
	courseIDs, err := s.EnrollmentRepo.ActiveCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []Classmate{}, nil
	}

	var users []model.User
	if err := s.DB.Model(&model.User{}).
		Distinct("users.id, users.name, users.email, users.role").
		Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("users.id != ? AND enrollments.status = ? AND enrollments.course_id IN ?",
			userID, model.EnrollmentActive, courseIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}

	classmates := make([]Classmate, 0, len(users))
	for _, u := range users {
		var titles []string
		if err := s.DB.Model(&model.Course{}).
			Joins("JOIN enrollments ON enrollments.course_id = courses.id").
			Where("enrollments.user_id = ? AND enrollments.status = ? AND enrollments.course_id IN ?",
				u.ID, model.EnrollmentActive, courseIDs).
			Pluck("courses.title", &titles).Error; err != nil {
			return nil, err
		}
		classmates = append(classmates, Classmate{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Role:    u.Role,
			Courses: titles,
		})
	}
	return classmates, nil
}
