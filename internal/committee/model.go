package committee

import (
	"time"

	"github.com/samajconnect/portal-backend/internal/member"
)

// Committee is a named working group. It can carry a published PDF document
// and a set of member assignments with position labels.
type Committee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	PdfURL      string    `gorm:"type:text" json:"pdf_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Assignments []CommitteeMember `gorm:"foreignKey:CommitteeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Committee) TableName() string {
	return "committees"
}

// CommitteeMember links a directory member to a committee with a position.
type CommitteeMember struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CommitteeID uint          `gorm:"not null;index" json:"committee_id"`
	MemberID    uint          `gorm:"not null;index" json:"member_id"`
	Position    string        `gorm:"type:varchar(100)" json:"position"`
	Member      member.Member `gorm:"foreignKey:MemberID" json:"-"`
}

func (CommitteeMember) TableName() string {
	return "committee_members"
}

// MemberView is the flattened assignment shape returned by the API.
type MemberView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	ImageURL          string `json:"image_url"`
	Position          string `json:"position"`
	CommitteeMemberID uint   `json:"committee_member_id"`
}

// View is a committee with its flattened member list.
type View struct {
	Committee
	Members []MemberView `json:"members"`
}

type UpsertRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PdfURL      string `json:"pdf_url"`
	IsActive    *bool  `json:"is_active"`
}

type AssignRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Position string `json:"position"`
}
