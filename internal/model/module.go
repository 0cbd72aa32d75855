package model

// Module owns the five orderable content collections. Ordem is dense and
// 1-based within its course; content items keep their own dense ordem
// within (module, kind).
// swagger:model Module
type Module struct {
	BaseModel
	CourseID uint     `gorm:"index;not null" json:"cursoId"`
	Title    string   `gorm:"size:255;not null" json:"titulo"`
	Ordem    int      `gorm:"not null;default:0" json:"ordem"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"moduloId"`
	Title    string `gorm:"size:255;not null" json:"titulo"`
	Ordem    int    `gorm:"not null;default:0" json:"ordem"`
}

func (Lesson) TableName() string {
	return "lessons"
}
