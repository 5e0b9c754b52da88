package document

import (
	"context"
	"errors"

	"github.com/samajconnect/portal-backend/internal/auditlog"
)

var ErrUnknownCategory = errors.New("unknown document category")

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) List(category string) ([]Document, error) {
	if !ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return s.Repo.ListByCategory(category)
}

func (s *Service) Create(category string, req *CreateRequest, actorID *uint, ip string) (*Document, error) {
	if !ValidCategory(category) {
		return nil, ErrUnknownCategory
	}

	d := &Document{
		Category: category,
		Title:    req.Title,
		PdfURL:   req.PdfURL,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}

	s.audit(actorID, "DOCUMENT_ADDED", map[string]interface{}{
		"document_id": d.ID,
		"category":    category,
		"title":       d.Title,
	}, ip)
	return d, nil
}

func (s *Service) Delete(category string, id uint, actorID *uint, ip string) error {
	if !ValidCategory(category) {
		return ErrUnknownCategory
	}

	if err := s.Repo.Delete(category, id); err != nil {
		return err
	}

	s.audit(actorID, "DOCUMENT_DELETED", map[string]interface{}{
		"document_id": id,
		"category":    category,
	}, ip)
	return nil
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}
