package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	if err := r.DB.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByCourses(courseIDs []uint) ([]model.Task, error) {
	var tasks []model.Task
	if len(courseIDs) == 0 {
		return tasks, nil
	}
	err := r.DB.Where("course_id IN ?", courseIDs).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) UpdateStatus(id uint, status string) (*model.Task, error) {
	var task model.Task
	if err := r.DB.First(&task, id).Error; err != nil {
		return nil, err
	}
	task.Status = status
	if err := r.DB.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Task{}, id).Error
}

func (r *TaskRepository) CreateResponse(response *model.TaskResponse) error {
	return r.DB.Create(response).Error
}
