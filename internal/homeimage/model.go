package homeimage

import (
	"time"
)

// HomeImage is one slide on the homepage slider. DisplayOrder defines the
// render sequence; the visible order is the ascending sort of this field with
// ties broken by id.
type HomeImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	DisplayOrder int       `gorm:"default:1;index" json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HomeImage) TableName() string {
	return "home_images"
}

type UpsertRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type ReorderRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
