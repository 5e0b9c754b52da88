package committee

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(cm *Committee) error {
	return r.DB.Create(cm).Error
}

func (r *Repository) GetByID(id uint) (*Committee, error) {
	var cm Committee
	if err := r.DB.First(&cm, id).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *Repository) Update(cm *Committee) error {
	return r.DB.Save(cm).Error
}

// Delete removes the committee and its assignments.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("committee_id = ?", id).Delete(&CommitteeMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Committee{}, id).Error
	})
}

// ListAll returns every committee with member assignments preloaded, ordered
// by name.
func (r *Repository) ListAll() ([]Committee, error) {
	committees := []Committee{}
	err := r.DB.
		Preload("Assignments.Member").
		Order("name ASC").
		Find(&committees).Error
	return committees, err
}

// ListActive returns the public committee listing with assignments.
func (r *Repository) ListActive() ([]Committee, error) {
	committees := []Committee{}
	err := r.DB.
		Preload("Assignments.Member").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&committees).Error
	return committees, err
}

func (r *Repository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&Committee{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *Repository) AddMember(assignment *CommitteeMember) error {
	return r.DB.Create(assignment).Error
}

func (r *Repository) RemoveMember(committeeID, assignmentID uint) error {
	return r.DB.
		Where("id = ? AND committee_id = ?", assignmentID, committeeID).
		Delete(&CommitteeMember{}).Error
}
