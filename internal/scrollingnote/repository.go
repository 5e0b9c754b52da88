package scrollingnote

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Get returns the singleton note, or nil (not an error) when absent.
func (r *Repository) Get() (*ScrollingNote, error) {
	var note ScrollingNote
	err := r.DB.Where("id = ?", SingletonID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// Upsert replaces the singleton's message, inserting the row on first write.
func (r *Repository) Upsert(message string) (*ScrollingNote, error) {
	note := ScrollingNote{
		ID:      SingletonID,
		Message: message,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"message", "updated_at"}),
	}).Create(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete removes the singleton. Deleting an absent note is not an error.
func (r *Repository) Delete() error {
	return r.DB.Where("id = ?", SingletonID).Delete(&ScrollingNote{}).Error
}
