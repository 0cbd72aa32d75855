package model

// swagger:model Test
type Test struct {
	BaseModel
	CourseID    uint     `gorm:"index;not null" json:"curso_id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Status      string   `gorm:"size:20;default:'pendente'" json:"status"`
	Grade       *float64 `json:"nota"`
}

func (Test) TableName() string {
	return "tests"
}
