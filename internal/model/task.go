package model

const (
	TaskPending   = "pendente"
	TaskSubmitted = "enviado"
)

// swagger:model Task
type Task struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"curso_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Status      string `gorm:"size:20;default:'pendente'" json:"status"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskResponse rows are append-only submission facts.
// swagger:model TaskResponse
type TaskResponse struct {
	BaseModel
	TaskID uint   `gorm:"index;not null" json:"tarefaId"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	URL    string `gorm:"size:255;not null" json:"url"`
}

func (TaskResponse) TableName() string {
	return "task_responses"
}
