package repository

import (
	"buriti_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) GetByUser(userID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

// SetWatched upserts the watched flag keyed by the four-tuple in a single
// conditional statement, so concurrent retries for the same tuple collapse
// onto one row instead of racing a select + insert.
func (r *ProgressRepository) SetWatched(userID, courseID, moduleID, lessonID uint, watched bool) error {
	record := model.ProgressRecord{
		UserID:   userID,
		CourseID: courseID,
		ModuleID: moduleID,
		LessonID: lessonID,
		Watched:  watched,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "course_id"}, {Name: "module_id"}, {Name: "lesson_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"watched":    watched,
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
}

func (r *ProgressRepository) CountWatched(userID, courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Where("user_id = ? AND course_id = ? AND watched = ?", userID, courseID, true).
		Count(&count).Error
	return count, err
}

// CountLessons counts every lesson under the course's modules, the
// denominator of the completion ratio.
func (r *ProgressRepository) CountLessons(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
