package model

type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "active"
	EnrollmentInactive EnrollmentStatus = "inactive"
)

// Enrollment entitles a user to a course while Status is active. At most
// one active row may exist per (user, course); the service layer rejects
// duplicates at write time.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID   uint             `gorm:"index:idx_user_course;not null" json:"userId"`
	CourseID uint             `gorm:"index:idx_user_course;not null" json:"cursoId"`
	Status   EnrollmentStatus `gorm:"size:20;default:'active'" json:"status"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
