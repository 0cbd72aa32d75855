package model

// ProgressRecord stores one watched/unwatched fact per
// (user, course, module, lesson). The composite unique index backs the
// upsert in ProgressRepository.SetWatched.
// swagger:model ProgressRecord
type ProgressRecord struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_progress_tuple;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_progress_tuple;not null" json:"cursoId"`
	ModuleID uint `gorm:"uniqueIndex:idx_progress_tuple;not null" json:"moduloId"`
	LessonID uint `gorm:"uniqueIndex:idx_progress_tuple;not null" json:"aulaId"`
	Watched  bool `gorm:"not null;default:false" json:"assistida"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}

// StudentProgress is the admin dashboard projection, never persisted.
type StudentProgress struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"` // 0..100
}
