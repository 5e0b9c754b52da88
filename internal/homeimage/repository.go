package homeimage

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(img *HomeImage) error {
	return r.DB.Create(img).Error
}

func (r *Repository) GetByID(id uint) (*HomeImage, error) {
	var img HomeImage
	if err := r.DB.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) Update(img *HomeImage) error {
	return r.DB.Save(img).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&HomeImage{}, id).Error
}

// ListOrdered returns every slide in render order.
func (r *Repository) ListOrdered() ([]HomeImage, error) {
	images := []HomeImage{}
	err := r.DB.Order("display_order ASC, id ASC").Find(&images).Error
	return images, err
}

// ListActiveOrdered returns the public slider set in render order.
func (r *Repository) ListActiveOrdered() ([]HomeImage, error) {
	images := []HomeImage{}
	err := r.DB.
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&images).Error
	return images, err
}

// SwapDisplayOrder exchanges the display_order values of two slides inside a
// single transaction so a concurrent reorder cannot observe or produce a
// half-applied swap.
func (r *Repository) SwapDisplayOrder(a, b *HomeImage) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&HomeImage{}).Where("id = ?", a.ID).
			Update("display_order", b.DisplayOrder).Error; err != nil {
			return err
		}
		return tx.Model(&HomeImage{}).Where("id = ?", b.ID).
			Update("display_order", a.DisplayOrder).Error
	})
}
