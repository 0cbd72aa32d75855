package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"buriti_backend/pkg/logger"
	"buriti_backend/pkg/monitoring"
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uploadProgressTTL = 30 * time.Minute

// ContentService manages the per-module content collections: videos,
// live sessions, quizzes and published materials.
type ContentService struct {
	ContentRepo *repository.ContentRepository
	ModuleRepo  *repository.ModuleRepository
	Sequencer   *repository.Sequencer
	Storage     *StorageService
	Enrollments *EnrollmentService
	Redis       *redis.Client
	DB          *gorm.DB
}

func NewContentService(contentRepo *repository.ContentRepository, moduleRepo *repository.ModuleRepository, sequencer *repository.Sequencer, storage *StorageService, enrollments *EnrollmentService, rdb *redis.Client, db *gorm.DB) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		ModuleRepo:  moduleRepo,
		Sequencer:   sequencer,
		Storage:     storage,
		Enrollments: enrollments,
		Redis:       rdb,
		DB:          db,
	}
}

func (s *ContentService) requireModule(id uint) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("module not found")
		}
		return nil, err
	}
	return module, nil
}

// requireModuleInCourse also checks the module really belongs to the
// course named in the URL, so a crafted path cannot reorder across
// courses.
func (s *ContentService) requireModuleInCourse(moduleID, courseID uint) (*model.Module, error) {
	module, err := s.requireModule(moduleID)
	if err != nil {
		return nil, err
	}
	if module.CourseID != courseID {
		return nil, util.NotFoundErr("module not found in course")
	}
	return module, nil
}

func (s *ContentService) setUploadProgress(ctx context.Context, uploadID string, percent int) {
	if s.Redis == nil {
		return
	}
	key := "upload_progress:" + uploadID
	if err := s.Redis.Set(ctx, key, percent, uploadProgressTTL).Err(); err != nil {
		logger.Log.Warn("upload progress not recorded", zap.String("upload_id", uploadID), zap.Error(err))
	}
}

// GetUploadProgress reports the tracked percentage for an in-flight
// upload, or -1 when the tracker has no record of it.
func (s *ContentService) GetUploadProgress(ctx context.Context, uploadID string) (int, error) {
	if s.Redis == nil {
		return -1, nil
	}
	percent, err := s.Redis.Get(ctx, "upload_progress:"+uploadID).Int()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	return percent, nil
}

type VideoUploadResult struct {
	Video    *model.Video `json:"video"`
	UploadID string       `json:"uploadId"`
}

// CreateVideo stores the file, probes it for duration, then inserts the
// row at the end of the module's ordering. A failed insert removes the
// stored file.
func (s *ContentService) CreateVideo(ctx context.Context, moduleID uint, title string, ordem *int, file *multipart.FileHeader) (*VideoUploadResult, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	if file == nil {
		return nil, util.ValidationErr("video file is required")
	}
	if _, err := s.requireModule(moduleID); err != nil {
		return nil, err
	}

	uploadID := uuid.NewString()
	s.setUploadProgress(ctx, uploadID, 0)

	url, err := s.Storage.SaveMultipart(ctx, file, "videos", []string{util.MimeVideo})
	if err != nil {
		return nil, err
	}
	s.setUploadProgress(ctx, uploadID, 100)

	video := &model.Video{ModuleID: moduleID, Title: title, URL: url}

	if local, ok := s.Storage.Provider.(*LocalStorageProvider); ok {
		path := filepath.Join(local.Config.LocalPath, "videos", filepath.Base(url))
		if info, err := util.GetVideoInfo(path); err != nil {
			logger.Log.Warn("video probe failed", zap.String("url", url), zap.Error(err))
		} else {
			video.Duration = info.Duration
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			video.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.VideoScope, moduleID)
			if err != nil {
				return err
			}
			video.Ordem = next
		}
		return tx.Create(video).Error
	})
	if err != nil {
		if derr := s.Storage.DeleteURL(ctx, url); derr != nil {
			logger.Log.Warn("orphaned video file left behind", zap.String("url", url), zap.Error(derr))
		}
		return nil, err
	}
	monitoring.VideoUploads.Inc()
	return &VideoUploadResult{Video: video, UploadID: uploadID}, nil
}

func (s *ContentService) DeleteVideo(ctx context.Context, id uint) error {
	video, err := s.ContentRepo.FindVideoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("video not found")
		}
		return err
	}
	if err := s.DB.Delete(&model.Video{}, id).Error; err != nil {
		return err
	}
	if err := s.Storage.DeleteURL(ctx, video.URL); err != nil {
		logger.Log.Warn("orphaned video file left behind", zap.String("url", video.URL), zap.Error(err))
	}
	return nil
}

func (s *ContentService) ReorderVideos(courseID, moduleID uint, orderedIDs []uint) error {
	if _, err := s.requireModuleInCourse(moduleID, courseID); err != nil {
		return err
	}
	return s.Sequencer.Reorder(repository.VideoScope, moduleID, orderedIDs)
}

func (s *ContentService) CreateLiveSession(moduleID uint, session *model.LiveSession, ordem *int) error {
	if session.Title == "" || session.MeetingURL == "" {
		return util.ValidationErr("title and meeting link are required")
	}
	if session.ScheduledAt.IsZero() {
		return util.ValidationErr("scheduled date is required")
	}
	if _, err := s.requireModule(moduleID); err != nil {
		return err
	}

	session.ModuleID = moduleID
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			session.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.LiveSessionScope, moduleID)
			if err != nil {
				return err
			}
			session.Ordem = next
		}
		return tx.Create(session).Error
	})
}

func (s *ContentService) DeleteLiveSession(id uint) error {
	if _, err := s.ContentRepo.FindLiveSessionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("live session not found")
		}
		return err
	}
	return s.DB.Delete(&model.LiveSession{}, id).Error
}

func (s *ContentService) ReorderLiveSessions(courseID, moduleID uint, orderedIDs []uint) error {
	if _, err := s.requireModuleInCourse(moduleID, courseID); err != nil {
		return err
	}
	return s.Sequencer.Reorder(repository.LiveSessionScope, moduleID, orderedIDs)
}

func (s *ContentService) CreateQuiz(moduleID uint, quiz *model.Quiz, ordem *int) error {
	if quiz.Question == "" || quiz.Correct == "" {
		return util.ValidationErr("question and correct answer are required")
	}
	if quiz.MinGrade <= 0 {
		return util.ValidationErr("minimum grade must be positive")
	}
	if _, err := s.requireModule(moduleID); err != nil {
		return err
	}

	quiz.ModuleID = moduleID
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			quiz.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.QuizScope, moduleID)
			if err != nil {
				return err
			}
			quiz.Ordem = next
		}
		return tx.Create(quiz).Error
	})
}

func (s *ContentService) DeleteQuiz(id uint) error {
	if _, err := s.ContentRepo.FindQuizByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("quiz not found")
		}
		return err
	}
	return s.DB.Delete(&model.Quiz{}, id).Error
}

func (s *ContentService) ReorderQuizzes(courseID, moduleID uint, orderedIDs []uint) error {
	if _, err := s.requireModuleInCourse(moduleID, courseID); err != nil {
		return err
	}
	return s.Sequencer.Reorder(repository.QuizScope, moduleID, orderedIDs)
}

// SubmitQuizResponse grades and appends in one step. The grade is the
// quiz minimum on a correct answer and zero otherwise; rows are never
// updated, so every attempt stays on record.
func (s *ContentService) SubmitQuizResponse(userID, quizID uint, answer string) (*model.QuizResponse, error) {
	if answer == "" {
		return nil, util.ValidationErr("answer is required")
	}
	quiz, err := s.ContentRepo.FindQuizByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("quiz not found")
		}
		return nil, err
	}
	module, err := s.requireModule(quiz.ModuleID)
	if err != nil {
		return nil, err
	}
	if err := s.Enrollments.RequireActiveEnrollment(userID, module.CourseID); err != nil {
		return nil, err
	}

	correct := answer == quiz.Correct
	grade := 0
	if correct {
		grade = quiz.MinGrade
	}

	response := &model.QuizResponse{
		QuizID:  quizID,
		UserID:  userID,
		Answer:  answer,
		Correct: correct,
		Grade:   grade,
	}
	if err := s.ContentRepo.CreateQuizResponse(response); err != nil {
		return nil, err
	}
	monitoring.QuizSubmissions.Inc()
	return response, nil
}

// CreateUpload publishes course material with an attached file.
func (s *ContentService) CreateUpload(ctx context.Context, moduleID uint, title, instructions string, ordem *int, file *multipart.FileHeader) (*model.Upload, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	if file == nil {
		return nil, util.ValidationErr("file is required")
	}
	if _, err := s.requireModule(moduleID); err != nil {
		return nil, err
	}

	url, err := s.Storage.SaveMultipart(ctx, file, "materials", util.AllowedUploadTypes)
	if err != nil {
		return nil, err
	}

	upload := &model.Upload{
		ModuleID:     moduleID,
		Title:        title,
		Instructions: instructions,
		URL:          url,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			upload.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.UploadScope, moduleID)
			if err != nil {
				return err
			}
			upload.Ordem = next
		}
		return tx.Create(upload).Error
	})
	if err != nil {
		if derr := s.Storage.DeleteURL(ctx, url); derr != nil {
			logger.Log.Warn("orphaned material file left behind", zap.String("url", url), zap.Error(derr))
		}
		return nil, err
	}
	return upload, nil
}

func (s *ContentService) DeleteUpload(ctx context.Context, id uint) error {
	upload, err := s.ContentRepo.FindUploadByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("upload not found")
		}
		return err
	}
	if err := s.DB.Delete(&model.Upload{}, id).Error; err != nil {
		return err
	}
	if err := s.Storage.DeleteURL(ctx, upload.URL); err != nil {
		logger.Log.Warn("orphaned material file left behind", zap.String("url", upload.URL), zap.Error(err))
	}
	return nil
}

func (s *ContentService) ReorderUploads(courseID, moduleID uint, orderedIDs []uint) error {
	if _, err := s.requireModuleInCourse(moduleID, courseID); err != nil {
		return err
	}
	return s.Sequencer.Reorder(repository.UploadScope, moduleID, orderedIDs)
}

// ListModuleUploads is the student-facing material listing; the caller
// must already hold an active enrollment in the module's course.
func (s *ContentService) ListModuleUploads(userID, moduleID uint) ([]model.Upload, error) {
	module, err := s.requireModule(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.Enrollments.RequireActiveEnrollment(userID, module.CourseID); err != nil {
		return nil, err
	}
	return s.ContentRepo.ListUploads(moduleID)
}
