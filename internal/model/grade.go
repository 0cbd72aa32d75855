package model

// swagger:model Grade
type Grade struct {
	BaseModel
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	CourseID uint    `gorm:"index;not null" json:"curso_id"`
	Value    float64 `gorm:"not null" json:"nota"`
}

func (Grade) TableName() string {
	return "grades"
}
