package scrollingnote

import (
	"context"

	"github.com/samajconnect/portal-backend/internal/auditlog"
)

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) Get() (*ScrollingNote, error) {
	return s.Repo.Get()
}

func (s *Service) Set(message string, actorID *uint, ip string) (*ScrollingNote, error) {
	note, err := s.Repo.Upsert(message)
	if err != nil {
		return nil, err
	}

	s.audit(actorID, "SCROLLING_NOTE_SET", map[string]interface{}{"message": message}, ip)
	return note, nil
}

func (s *Service) Clear(actorID *uint, ip string) error {
	if err := s.Repo.Delete(); err != nil {
		return err
	}

	s.audit(actorID, "SCROLLING_NOTE_CLEARED", nil, ip)
	return nil
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}
