package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ForumService struct {
	ForumRepo      *repository.ForumRepository
	ModuleRepo     *repository.ModuleRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Enrollments    *EnrollmentService
	Sequencer      *repository.Sequencer
	DB             *gorm.DB
}

func NewForumService(forumRepo *repository.ForumRepository, moduleRepo *repository.ModuleRepository, enrollmentRepo *repository.EnrollmentRepository, enrollments *EnrollmentService, sequencer *repository.Sequencer, db *gorm.DB) *ForumService {
	return &ForumService{
		ForumRepo:      forumRepo,
		ModuleRepo:     moduleRepo,
		EnrollmentRepo: enrollmentRepo,
		Enrollments:    enrollments,
		Sequencer:      sequencer,
		DB:             db,
	}
}

// Create copies the module's CourseID onto the forum so the guard never
// needs a join.
func (s *ForumService) Create(moduleID uint, title string, ordem *int) (*model.Forum, error) {
	if title == "" {
		return nil, util.ValidationErr("title is required")
	}
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("module not found")
		}
		return nil, err
	}

	forum := &model.Forum{ModuleID: moduleID, CourseID: module.CourseID, Title: title}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if ordem != nil {
			forum.Ordem = *ordem
		} else {
			next, err := s.Sequencer.NextOrder(tx, repository.ForumScope, moduleID)
			if err != nil {
				return err
			}
			forum.Ordem = next
		}
		return tx.Create(forum).Error
	})
	if err != nil {
		return nil, err
	}
	return forum, nil
}

func (s *ForumService) Delete(id uint) error {
	if _, err := s.ForumRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("forum not found")
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("forum_id = ?", id).Delete(&model.ForumMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Forum{}, id).Error
	})
}

func (s *ForumService) Reorder(courseID, moduleID uint, orderedIDs []uint) error {
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
	return s.Sequencer.Reorder(repository.ForumScope, moduleID, orderedIDs)
}

// ListForUser shows only the forums of courses the user is actively
// enrolled in.
func (s *ForumService) ListForUser(userID uint) ([]model.Forum, error) {
	courseIDs, err := s.EnrollmentRepo.ActiveCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []model.Forum{}, nil
	}
	return s.ForumRepo.ListByCourses(courseIDs)
}

func (s *ForumService) requireForumAccess(userID, forumID uint) (*model.Forum, error) {
	forum, err := s.ForumRepo.FindByID(forumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("forum not found")
		}
		return nil, err
	}
	if err := s.Enrollments.RequireActiveEnrollment(userID, forum.CourseID); err != nil {
		return nil, err
	}
	return forum, nil
}

// PostMessage requires an active enrollment regardless of role; admins
// posting as themselves are held to the same gate.
func (s *ForumService) PostMessage(userID uint, userName string, forumID uint, message string) (*model.ForumMessage, error) {
	if message == "" {
		return nil, util.ValidationErr("message is required")
	}
	if _, err := s.requireForumAccess(userID, forumID); err != nil {
		return nil, err
	}

	msg := &model.ForumMessage{
		ForumID:   forumID,
		UserID:    userID,
		UserName:  userName,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err := s.ForumRepo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ForumService) ListMessages(userID, forumID uint) ([]model.ForumMessage, error) {
	if _, err := s.requireForumAccess(userID, forumID); err != nil {
		return nil, err
	}
	return s.ForumRepo.ListMessages(forumID)
}
