package auth

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents the users table. Emails are stored trimmed and lowercased.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:member" json:"role"`
	IsApproved   bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
