package model

import "time"

// Forum keeps a denormalized CourseID so the enrollment guard resolves
// without joining through the module.
// swagger:model Forum
type Forum struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"moduloId"`
	CourseID uint   `gorm:"index;not null" json:"cursoId"`
	Title    string `gorm:"size:255;not null" json:"titulo"`
	Ordem    int    `gorm:"not null;default:0" json:"ordem"`
}

func (Forum) TableName() string {
	return "forums"
}

// swagger:model ForumMessage
type ForumMessage struct {
	BaseModel
	ForumID   uint      `gorm:"index;not null" json:"forumId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	UserName  string    `gorm:"size:100" json:"userNome"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (ForumMessage) TableName() string {
	return "forum_messages"
}
