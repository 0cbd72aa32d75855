package model

import "time"

// swagger:model Video
type Video struct {
	BaseModel
	ModuleID uint    `gorm:"index;not null" json:"moduloId"`
	Title    string  `gorm:"size:255;not null" json:"titulo"`
	URL      string  `gorm:"size:255;not null" json:"url"`
	Duration float64 `json:"duracao"` // seconds, probed from the uploaded file
	Ordem    int     `gorm:"not null;default:0" json:"ordem"`
}

func (Video) TableName() string {
	return "videos"
}

// swagger:model LiveSession
type LiveSession struct {
	BaseModel
	ModuleID    uint      `gorm:"index;not null" json:"moduloId"`
	Title       string    `gorm:"size:255;not null" json:"titulo"`
	MeetingURL  string    `gorm:"size:255;not null" json:"linkJitsi"`
	ScheduledAt time.Time `json:"dataHora"`
	Password    string    `gorm:"size:100" json:"senha,omitempty"`
	Ordem       int       `gorm:"not null;default:0" json:"ordem"`
}

func (LiveSession) TableName() string {
	return "live_sessions"
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"moduloId"`
	Question string `gorm:"type:text;not null" json:"pergunta"`
	Options  string `gorm:"type:json" json:"opcoes"` // JSON array of option strings
	Correct  string `gorm:"size:255;not null" json:"-"`
	MinGrade int    `gorm:"not null" json:"notaMinima"`
	Ordem    int    `gorm:"not null;default:0" json:"ordem"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizResponse rows are append-only; grading happens once at insert.
// swagger:model QuizResponse
type QuizResponse struct {
	BaseModel
	QuizID  uint   `gorm:"index;not null" json:"quizId"`
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Answer  string `gorm:"size:255;not null" json:"resposta"`
	Correct bool   `json:"acerto"`
	Grade   int    `json:"nota"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}

// Upload is admin-published course material with a stored file.
// swagger:model Upload
type Upload struct {
	BaseModel
	ModuleID     uint   `gorm:"index;not null" json:"moduloId"`
	Title        string `gorm:"size:255;not null" json:"titulo"`
	Instructions string `gorm:"type:text" json:"instrucoes"`
	URL          string `gorm:"size:255;not null" json:"url"`
	Ordem        int    `gorm:"not null;default:0" json:"ordem"`
}

func (Upload) TableName() string {
	return "uploads"
}
