package document

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(d *Document) error {
	return r.DB.Create(d).Error
}

// ListByCategory returns a collection newest-first.
func (r *Repository) ListByCategory(category string) ([]Document, error) {
	docs := []Document{}
	err := r.DB.
		Where("category = ?", category).
		Order("uploaded_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *Repository) Delete(category string, id uint) error {
	return r.DB.
		Where("id = ? AND category = ?", id, category).
		Delete(&Document{}).Error
}
