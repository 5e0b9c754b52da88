package event

import (
	"time"
)

// Event is a community event. EventDate is stored in UTC; clients convert at
// the presentation boundary.
type Event struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	EventDate     time.Time `gorm:"not null;index" json:"event_date"`
	Location      string    `gorm:"type:text" json:"location"`
	ContactPerson string    `gorm:"type:varchar(255)" json:"contact_person"`
	ImageURL      string    `gorm:"type:text" json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

type UpsertRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	EventDate     string `json:"event_date" binding:"required"` // RFC3339 or "2006-01-02"
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	ImageURL      string `json:"image_url"`
	IsActive      *bool  `json:"is_active"`
}
