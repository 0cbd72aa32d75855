package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo       *repository.TaskRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Enrollments    *EnrollmentService
	Storage        *StorageService
	DB             *gorm.DB
}

func NewTaskService(taskRepo *repository.TaskRepository, courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, enrollments *EnrollmentService, storage *StorageService, db *gorm.DB) *TaskService {
	return &TaskService{
		TaskRepo:       taskRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Enrollments:    enrollments,
		Storage:        storage,
		DB:             db,
	}
}

func (s *TaskService) ListForUser(userID uint) ([]model.Task, error) {
	courseIDs, err := s.EnrollmentRepo.ActiveCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []model.Task{}, nil
	}
	return s.TaskRepo.ListByCourses(courseIDs)
}

func (s *TaskService) Create(task *model.Task) error {
	if task.Title == "" || task.Description == "" {
		return util.ValidationErr("title and description are required")
	}
	if _, err := s.CourseRepo.FindByID(task.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("course not found")
		}
		return err
	}
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	return s.TaskRepo.Create(task)
}

func (s *TaskService) UpdateStatus(id uint, status string) (*model.Task, error) {
	if status == "" {
		return nil, util.ValidationErr("status is required")
	}
	task, err := s.TaskRepo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("task not found")
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(id uint) error {
	err := s.TaskRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundErr("task not found")
	}
	return err
}

// SubmitResponse stores the student's file, then appends the response
// row and flips the task to submitted in one transaction. A failed
// transaction removes the stored file.
func (s *TaskService) SubmitResponse(ctx context.Context, userID, taskID uint, file *multipart.FileHeader) (*model.TaskResponse, error) {
	if file == nil {
		return nil, util.ValidationErr("file is required")
	}
	task, err := s.TaskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("task not found")
		}
		return nil, err
	}
	if err := s.Enrollments.RequireActiveEnrollment(userID, task.CourseID); err != nil {
		return nil, err
	}

	url, err := s.Storage.SaveMultipart(ctx, file, "tasks", util.AllowedUploadTypes)
	if err != nil {
		return nil, err
	}

	response := &model.TaskResponse{TaskID: taskID, UserID: userID, URL: url}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		return tx.Model(&model.Task{}).Where("id = ?", taskID).
			Update("status", model.TaskSubmitted).Error
	})
	if err != nil {
		s.Storage.DeleteURL(ctx, url)
		return nil, err
	}
	return response, nil
}
