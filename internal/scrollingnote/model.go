package scrollingnote

import (
	"time"
)

// SingletonID is the fixed identifier every write targets, constraining the
// table to at most one row.
const SingletonID = "00000000-0000-0000-0000-000000000002"

// ScrollingNote is the single current announcement shown on the homepage.
type ScrollingNote struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScrollingNote) TableName() string {
	return "scrolling_notes"
}

type UpsertRequest struct {
	Message string `json:"message" binding:"required"`
}
