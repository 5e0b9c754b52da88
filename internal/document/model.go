package document

import (
	"time"
)

// Categories for the three published PDF collections. The original system
// kept one table per collection; the rows are identical in shape, so they
// share the documents table with a category discriminator. The per-collection
// API contract is unchanged.
const (
	CategorySabhaSadasya = "sabha-sadasya"
	CategoryPatraPatrika = "patra-patrikaen"
	CategorySadasyaSuchi = "sadasya-suchi"
)

// Document is one published PDF entry.
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Category   string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	PdfURL     string    `gorm:"type:text;not null" json:"pdf_url"`
	UploadedAt time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`
}

func (Document) TableName() string {
	return "documents"
}

type CreateRequest struct {
	Title  string `json:"title" binding:"required"`
	PdfURL string `json:"pdf_url" binding:"required"`
}

// ValidCategory reports whether the category names a known collection.
func ValidCategory(category string) bool {
	switch category {
	case CategorySabhaSadasya, CategoryPatraPatrika, CategorySadasyaSuchi:
		return true
	}
	return false
}
