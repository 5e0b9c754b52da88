package useradmin

import (
	"gorm.io/gorm"

	"github.com/samajconnect/portal-backend/internal/auth"
)

type Repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List() ([]auth.User, error) {
	var users []auth.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *Repository) GetByID(id uint) (*auth.User, error) {
	var user auth.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&auth.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(user *auth.User) error {
	return r.db.Create(user).Error
}

func (r *Repository) Update(user *auth.User) error {
	return r.db.Save(user).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&auth.User{}, id).Error
}

func (r *Repository) CountPendingApprovals() (int64, error) {
	var count int64
	err := r.db.Model(&auth.User{}).Where("is_approved = ?", false).Count(&count).Error
	return count, err
}
