package models

import "time"

type Article struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Excerpt  string  `gorm:"type:text" json:"excerpt"`
	Content  string  `gorm:"type:text" json:"content"`
	Image    *string `json:"image"`
	Author   string  `json:"author"`
	Category string  `gorm:"index" json:"category"` // Histoire, Culture, Art...
	ReadTime string  `json:"readTime"`              // "5 min"
	Featured bool    `json:"featured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
