package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

// ContentRepository covers the four module content kinds that share the
// ordered-collection shape: videos, live sessions, quizzes and uploads.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindVideoByID(id uint) (*model.Video, error) {
	var video model.Video
	if err := r.DB.First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *ContentRepository) ListVideos(moduleID uint) ([]model.Video, error) {
	var videos []model.Video
	err := r.DB.Where("module_id = ?", moduleID).Order("ordem").Find(&videos).Error
	return videos, err
}

func (r *ContentRepository) FindLiveSessionByID(id uint) (*model.LiveSession, error) {
	var session model.LiveSession
	if err := r.DB.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ContentRepository) ListLiveSessions(moduleID uint) ([]model.LiveSession, error) {
	var sessions []model.LiveSession
	err := r.DB.Where("module_id = ?", moduleID).Order("ordem").Find(&sessions).Error
	return sessions, err
}

func (r *ContentRepository) FindQuizByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.DB.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *ContentRepository) ListQuizzes(moduleID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("module_id = ?", moduleID).Order("ordem").Find(&quizzes).Error
	return quizzes, err
}

func (r *ContentRepository) CreateQuizResponse(response *model.QuizResponse) error {
	return r.DB.Create(response).Error
}

func (r *ContentRepository) FindUploadByID(id uint) (*model.Upload, error) {
	var upload model.Upload
	if err := r.DB.First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *ContentRepository) ListUploads(moduleID uint) ([]model.Upload, error) {
	var uploads []model.Upload
	err := r.DB.Where("module_id = ?", moduleID).Order("ordem").Find(&uploads).Error
	return uploads, err
}
