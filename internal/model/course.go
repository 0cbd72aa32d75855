package model

type CourseStatus string

const (
	CourseDraft     CourseStatus = "Rascunho"
	CoursePublished CourseStatus = "Publicado"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"descricao"`
	Modality    string       `gorm:"size:50" json:"modality"`
	Duration    string       `gorm:"size:10" json:"duration"` // "40h" pattern, validated at the boundary
	Price       float64      `json:"price"`
	Status      CourseStatus `gorm:"size:20;default:'Rascunho'" json:"status"`
	Image       string       `gorm:"size:255" json:"imagem"`
	Modules     []Module     `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
