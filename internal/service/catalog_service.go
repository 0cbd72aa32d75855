package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"buriti_backend/pkg/logger"
	"context"
	"errors"
	"mime/multipart"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var durationPattern = regexp.MustCompile(`^\d+h$`)

// CatalogService owns courses, modules and lessons, including the
// cascading deletes that keep the content tree free of orphans.
type CatalogService struct {
	CourseRepo  *repository.CourseRepository
	ModuleRepo  *repository.ModuleRepository
	ContentRepo *repository.ContentRepository
	Sequencer   *repository.Sequencer
	Storage     *StorageService
	DB          *gorm.DB
}

func NewCatalogService(courseRepo *repository.CourseRepository, moduleRepo *repository.ModuleRepository, contentRepo *repository.ContentRepository, sequencer *repository.Sequencer, storage *StorageService, db *gorm.DB) *CatalogService {
	return &CatalogService{
		CourseRepo:  courseRepo,
		ModuleRepo:  moduleRepo,
		ContentRepo: contentRepo,
		Sequencer:   sequencer,
		Storage:     storage,
		DB:          db,
	}
}

func validateCourse(course *model.Course) error {
	if course.Title == "" || course.Description == "" || course.Duration == "" {
		return util.ValidationErr("title, description and duration are required")
	}
	if !durationPattern.MatchString(course.Duration) {
		return util.ValidationErr("duration must be a whole number of hours, e.g. 40h")
	}
	if course.Price < 0 {
		return util.ValidationErr("price cannot be negative")
	}
	if course.Status != "" && course.Status != model.CourseDraft && course.Status != model.CoursePublished {
		return util.ValidationErr("invalid course status")
	}
	return nil
}

// CreateCourse stores the cover image first so a failed insert never
// leaves a row pointing at a missing file.
func (s *CatalogService) CreateCourse(ctx context.Context, course *model.Course, image *multipart.FileHeader) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	if course.Status == "" {
		course.Status = model.CourseDraft
	}

	if image != nil {
		url, err := s.Storage.SaveMultipart(ctx, image, "courses", util.AllowedImageTypes)
		if err != nil {
			return err
		}
		course.Image = url
	}

	if err := s.CourseRepo.Create(course); err != nil {
		if course.Image != "" {
			if derr := s.Storage.DeleteURL(ctx, course.Image); derr != nil {
				logger.Log.Warn("orphaned course image left behind",
					zap.String("url", course.Image), zap.Error(derr))
			}
		}
		return err
	}
	return nil
}

func (s *CatalogService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CatalogService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithModules(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("course not found")
		}
		return nil, err
	}
	return course, nil
}

type CourseUpdate struct {
	Title       *string
	Description *string
	Modality    *string
	Duration    *string
	Price       *float64
	Status      *model.CourseStatus
}

// UpdateCourse replaces the cover image only after the row update
// commits; the old file is then removed best-effort.
func (s *CatalogService) UpdateCourse(ctx context.Context, id uint, update CourseUpdate, image *multipart.FileHeader) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("course not found")
		}
		return nil, err
	}

	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Modality != nil {
		course.Modality = *update.Modality
	}
	if update.Duration != nil {
		course.Duration = *update.Duration
	}
	if update.Price != nil {
		course.Price = *update.Price
	}
	if update.Status != nil {
		course.Status = *update.Status
	}
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	oldImage := ""
	if image != nil {
		url, err := s.Storage.SaveMultipart(ctx, image, "courses", util.AllowedImageTypes)
		if err != nil {
			return nil, err
		}
		oldImage = course.Image
		course.Image = url
	}

	if err := s.CourseRepo.Update(course); err != nil {
		if image != nil {
			s.Storage.DeleteURL(ctx, course.Image)
		}
		return nil, err
	}

	if oldImage != "" && oldImage != course.Image {
		if err := s.Storage.DeleteURL(ctx, oldImage); err != nil {
			logger.Log.Warn("stale course image left behind",
				zap.String("url", oldImage), zap.Error(err))
		}
	}
	return course, nil
}

// deleteModuleTree removes a module's children inside tx and returns the
// stored file URLs for post-commit cleanup.
func (s *CatalogService) deleteModuleTree(tx *gorm.DB, moduleID uint) ([]string, error) {
	var urls []string

	var videos []model.Video
	if err := tx.Where("module_id = ?", moduleID).Find(&videos).Error; err != nil {
		return nil, err
	}
	for _, v := range videos {
		urls = append(urls, v.URL)
	}

	var uploads []model.Upload
	if err := tx.Where("module_id = ?", moduleID).Find(&uploads).Error; err != nil {
		return nil, err
	}
	for _, u := range uploads {
		if u.URL != "" {
			urls = append(urls, u.URL)
		}
	}

	var forumIDs []uint
	if err := tx.Model(&model.Forum{}).Where("module_id = ?", moduleID).Pluck("id", &forumIDs).Error; err != nil {
		return nil, err
	}
	if len(forumIDs) > 0 {
		if err := tx.Where("forum_id IN ?", forumIDs).Delete(&model.ForumMessage{}).Error; err != nil {
			return nil, err
		}
	}

	for _, m := range []interface{}{
		&model.Lesson{}, &model.Video{}, &model.LiveSession{},
		&model.Quiz{}, &model.Forum{}, &model.Upload{},
	} {
		if err := tx.Where("module_id = ?", moduleID).Delete(m).Error; err != nil {
			return nil, err
		}
	}
	return urls, nil
}

func (s *CatalogService) cleanupFiles(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.Storage.DeleteURL(ctx, url); err != nil {
			logger.Log.Warn("orphaned file left behind", zap.String("url", url), zap.Error(err))
		}
	}
}

// DeleteCourse removes the course and its whole module tree in one
// transaction. Files are deleted only after the commit succeeds.
func (s *CatalogService) DeleteCourse(ctx context.Context, id uint) error {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}

	var urls []string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uint
		if err := tx.Model(&model.Module{}).Where("course_id = ?", id).Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}
		for _, mid := range moduleIDs {
			childURLs, err := s.deleteModuleTree(tx, mid)
			if err != nil {
				return err
			}
			urls = append(urls, childURLs...)
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Module{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
	if err != nil {
		return err
	}

	if course.Image != "" {
		urls = append(urls, course.Image)
	}
	s.cleanupFiles(ctx, urls)
	return nil
}

// CreateModule appends to the course's ordering unless an explicit
// position was supplied.
func (s *CatalogService) CreateModule(courseID uint, title string, ordem *int) (*model.Module, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("course not found")
		}
		return nil, err
	}

	module := &model.Module{CourseID: courseID, Title: title}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			module.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.ModuleScope, courseID)
			if err != nil {
				return err
			}
			module.Ordem = next
		}
		return tx.Create(module).Error
	})
	if err != nil {
		return nil, err
	}
	return module, nil
}

func (s *CatalogService) DeleteModule(ctx context.Context, id uint) error {
	if _, err := s.ModuleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("module not found")
		}
		return err
	}

	var urls []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		childURLs, err := s.deleteModuleTree(tx, id)
		if err != nil {
			return err
		}
		urls = childURLs
		return tx.Delete(&model.Module{}, id).Error
	})
	if err != nil {
		return err
	}

	s.cleanupFiles(ctx, urls)
	return nil
}

func (s *CatalogService) ReorderModules(courseID uint, orderedIDs []uint) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}
	return s.Sequencer.Reorder(repository.ModuleScope, courseID, orderedIDs)
}

func (s *CatalogService) CreateLesson(moduleID uint, title string, ordem *int) (*model.Lesson, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("module not found")
		}
		return nil, err
	}

	lesson := &model.Lesson{ModuleID: moduleID, Title: title}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			lesson.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.LessonScope, moduleID)
			if err != nil {
				return err
			}
			lesson.Ordem = next
		}
		return tx.Create(lesson).Error
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CatalogService) UpdateLesson(id uint, title string) (*model.Lesson, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	lesson, err := s.ModuleRepo.FindLessonByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("lesson not found")
		}
		return nil, err
	}
	lesson.Title = title
	if err := s.DB.Save(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson leaves any progress rows pointing at the lesson in place;
// completion counts always compare against the current lesson set.
func (s *CatalogService) DeleteLesson(id uint) error {
	if _, err := s.ModuleRepo.FindLessonByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("lesson not found")
		}
		return err
	}
	return s.DB.Delete(&model.Lesson{}, id).Error
}

// ModuleContent is a module with every content collection attached, each
// in its persisted order.
type ModuleContent struct {
	model.Module
	Videos       []model.Video       `json:"videos"`
	LiveSessions []model.LiveSession `json:"aulasAoVivo"`
	Quizzes      []model.Quiz        `json:"quizzes"`
	Forums       []model.Forum       `json:"foruns"`
	Uploads      []model.Upload      `json:"uploads"`
}

// CourseContent assembles the full content tree students see once the
// enrollment guard has passed.
func (s *CatalogService) CourseContent(courseID uint) ([]ModuleContent, error) {
	modules, err := s.ModuleRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	content := make([]ModuleContent, 0, len(modules))
	for _, m := range modules {
		mc := ModuleContent{Module: m}
		if mc.Videos, err = s.ContentRepo.ListVideos(m.ID); err != nil {
			return nil, err
		}
		if mc.LiveSessions, err = s.ContentRepo.ListLiveSessions(m.ID); err != nil {
			return nil, err
		}
		if mc.Quizzes, err = s.ContentRepo.ListQuizzes(m.ID); err != nil {
			return nil, err
		}
		var forums []model.Forum
		if err = s.DB.Where("module_id = ?", m.ID).Order("ordem ASC, id ASC").Find(&forums).Error; err != nil {
			return nil, err
		}
		mc.Forums = forums
		if mc.Uploads, err = s.ContentRepo.ListUploads(m.ID); err != nil {
			return nil, err
		}
		content = append(content, mc)
	}
	return content, nil
}
