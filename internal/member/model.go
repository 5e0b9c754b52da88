package member

import (
	"time"
)

// Member is one household entry in the community directory. FamilyHeadName is
// the primary display/sort name and the only required field.
type Member struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         *uint     `gorm:"index" json:"user_id,omitempty"` // set when created via self-registration
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	FirmFullName   string    `gorm:"type:varchar(255)" json:"firm_full_name"`
	FamilyHeadName string    `gorm:"type:varchar(255);not null;index" json:"family_head_name"`
	FirmAddress    string    `gorm:"type:text" json:"firm_address"`
	FirmColony     string    `gorm:"type:varchar(255)" json:"firm_colony"`
	FirmState      string    `gorm:"type:varchar(100)" json:"firm_state"`
	FirmDistrict   string    `gorm:"type:varchar(100)" json:"firm_district"`
	FirmCity       string    `gorm:"type:varchar(100)" json:"firm_city"`
	HomeAddress    string    `gorm:"type:text" json:"home_address"`
	State          string    `gorm:"type:varchar(100)" json:"state"`
	District       string    `gorm:"type:varchar(100)" json:"district"`
	City           string    `gorm:"type:varchar(100)" json:"city"`
	Business       string    `gorm:"type:varchar(255)" json:"business"`
	MobileNo1      string    `gorm:"type:varchar(20)" json:"mobile_no1"`
	MobileNo2      string    `gorm:"type:varchar(20)" json:"mobile_no2"`
	MobileNo3      string    `gorm:"type:varchar(20)" json:"mobile_no3"`
	OfficeNo       string    `gorm:"type:varchar(20)" json:"office_no"`
	PhoneNo        string    `gorm:"type:varchar(20)" json:"phone_no"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Gotra          string    `gorm:"type:varchar(100)" json:"gotra"`
	TotalMembers   int       `gorm:"default:1" json:"total_members"`
	Status         string    `gorm:"type:varchar(20);default:active" json:"status"`
	ImageURL       string    `gorm:"type:text" json:"image_url"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// UpsertRequest carries the writable member fields for create and update.
type UpsertRequest struct {
	Name           string `json:"name"`
	FirmFullName   string `json:"firm_full_name"`
	FamilyHeadName string `json:"family_head_name" binding:"required"`
	FirmAddress    string `json:"firm_address"`
	FirmColony     string `json:"firm_colony"`
	FirmState      string `json:"firm_state"`
	FirmDistrict   string `json:"firm_district"`
	FirmCity       string `json:"firm_city"`
	HomeAddress    string `json:"home_address"`
	State          string `json:"state"`
	District       string `json:"district"`
	City           string `json:"city"`
	Business       string `json:"business"`
	MobileNo1      string `json:"mobile_no1"`
	MobileNo2      string `json:"mobile_no2"`
	MobileNo3      string `json:"mobile_no3"`
	OfficeNo       string `json:"office_no"`
	PhoneNo        string `json:"phone_no"`
	Email          string `json:"email"`
	Gotra          string `json:"gotra"`
	TotalMembers   int    `json:"total_members"`
	Status         string `json:"status"`
	ImageURL       string `json:"image_url"`
	IsActive       *bool  `json:"is_active"`
}
