package model

// swagger:model News
type News struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"conteudo"`
	Category string `gorm:"size:100;not null" json:"categoria"`
	Link     string `gorm:"size:255" json:"link"`
	Status   string `gorm:"size:20;default:'Publicado'" json:"status"`
}

func (News) TableName() string {
	return "news"
}
