package homeimage

import (
	"context"
	"errors"

	"github.com/samajconnect/portal-backend/internal/auditlog"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

var ErrInvalidDirection = errors.New("direction must be \"up\" or \"down\"")

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) ListAdmin() ([]HomeImage, error) {
	return s.Repo.ListOrdered()
}

func (s *Service) ListPublic() ([]HomeImage, error) {
	return s.Repo.ListActiveOrdered()
}

func (s *Service) Create(req *UpsertRequest, actorID *uint, ip string) (*HomeImage, error) {
	img := &HomeImage{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if img.DisplayOrder == 0 {
		img.DisplayOrder = 1
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}

	if err := s.Repo.Create(img); err != nil {
		return nil, err
	}

	s.audit(actorID, "HOME_IMAGE_CREATED", map[string]interface{}{"image_id": img.ID, "title": img.Title}, ip)
	return img, nil
}

func (s *Service) Update(id uint, req *UpsertRequest, actorID *uint, ip string) (*HomeImage, error) {
	img, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	img.Title = req.Title
	img.Description = req.Description
	img.ImageURL = req.ImageURL
	if req.DisplayOrder > 0 {
		img.DisplayOrder = req.DisplayOrder
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(img); err != nil {
		return nil, err
	}

	s.audit(actorID, "HOME_IMAGE_UPDATED", map[string]interface{}{"image_id": img.ID, "title": img.Title}, ip)
	return img, nil
}

func (s *Service) Delete(id uint, actorID *uint, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.audit(actorID, "HOME_IMAGE_DELETED", map[string]interface{}{"image_id": id}, ip)
	return nil
}

// Reorder moves one slide up or down by exactly one position, exchanging
// display_order values with its neighbor. Moving the first slide up or the
// last slide down is a successful no-op. Only the two affected rows change.
func (s *Service) Reorder(id uint, direction string, actorID *uint, ip string) error {
	if direction != DirectionUp && direction != DirectionDown {
		return ErrInvalidDirection
	}

	target, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	all, err := s.Repo.ListOrdered()
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].ID == target.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.New("image not found in ordered set")
	}

	var neighbor *HomeImage
	switch {
	case direction == DirectionUp && idx > 0:
		neighbor = &all[idx-1]
	case direction == DirectionDown && idx < len(all)-1:
		neighbor = &all[idx+1]
	default:
		// Already at the boundary.
		return nil
	}

	if err := s.Repo.SwapDisplayOrder(target, neighbor); err != nil {
		return err
	}

	s.audit(actorID, "HOME_IMAGE_REORDERED", map[string]interface{}{
		"image_id":  target.ID,
		"direction": direction,
		"swapped":   neighbor.ID,
	}, ip)
	return nil
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}
