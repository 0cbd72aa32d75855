package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// HasActive answers the guard question: does (user, course) hold an active
// enrollment right now. Queried per request, never cached.
func (r *EnrollmentRepository) HasActive(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, model.EnrollmentActive).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) ListByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).Find(&enrollments).Error
	return enrollments, err
}

// ActiveCourseIDs is the caller's accessible-course set, re-derived on
// every guarded listing.
func (r *EnrollmentRepository) ActiveCourseIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND status = ?", userID, model.EnrollmentActive).
		Pluck("course_id", &ids).Error
	return ids, err
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

func (r *EnrollmentRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Enrollment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActiveStudentsByCourse lists the students holding an active enrollment in
// the course.
func (r *EnrollmentRepository) ActiveStudentsByCourse(courseID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Model(&model.User{}).
		Select("users.id, users.name, users.email, users.role").
		Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("enrollments.course_id = ? AND enrollments.status = ? AND users.role = ?",
			courseID, model.EnrollmentActive, model.Student).
		Find(&users).Error
	return users, err
}

// CourseRoster lists every enrollment of a course with the student's name
// and email, regardless of status.
type RosterEntry struct {
	Name   string                 `json:"nome"`
	Email  string                 `json:"email"`
	Status model.EnrollmentStatus `json:"status"`
}

func (r *EnrollmentRepository) CourseRoster(courseID uint) ([]RosterEntry, error) {
	var roster []RosterEntry
	err := r.DB.Model(&model.Enrollment{}).
		Select("users.name, users.email, enrollments.status").
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.course_id = ?", courseID).
		Scan(&roster).Error
	return roster, err
}
