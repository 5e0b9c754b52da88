package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetByID(id uint) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Update(e *Event) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Event{}, id).Error
}

// ListAll returns every event, most recent first, for the admin dashboard.
func (r *Repository) ListAll() ([]Event, error) {
	events := []Event{}
	err := r.DB.Order("event_date DESC").Find(&events).Error
	return events, err
}

// ListActive returns the public event listing.
func (r *Repository) ListActive() ([]Event, error) {
	events := []Event{}
	err := r.DB.
		Where("is_active = ?", true).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (r *Repository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&Event{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
