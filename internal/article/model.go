package article

import "petcare_backend/internal/common"

// Article is a pet-care guide entry.
type Article struct {
	common.BaseModel
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"type:varchar(50);not null;index" json:"category"`
	Author      string `gorm:"type:varchar(200);not null" json:"author"`
	ReadTime    string `gorm:"type:varchar(30)" json:"read_time"`
	Featured    bool   `gorm:"not null;default:false" json:"featured"`
}

func (Article) TableName() string {
	return "articles"
}

// CreateArticleRequest carries the fields for a new guide. The slug is
// generated from the title.
type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,max=50"`
	Author      string `json:"author" binding:"required,max=200"`
	ReadTime    string `json:"read_time" binding:"omitempty,max=30"`
	Featured    bool   `json:"featured"`
}
