package event

import (
	"context"
	"errors"
	"time"

	"github.com/samajconnect/portal-backend/internal/auditlog"
)

var errBadDate = errors.New("invalid event_date format. Use YYYY-MM-DD or RFC3339")

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) ListAdmin() ([]Event, error) {
	return s.Repo.ListAll()
}

func (s *Service) ListPublic() ([]Event, error) {
	return s.Repo.ListActive()
}

func (s *Service) Create(req *UpsertRequest, actorID *uint, ip string) (*Event, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	e := &Event{
		Title:         req.Title,
		Description:   req.Description,
		EventDate:     eventDate,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		ImageURL:      req.ImageURL,
		IsActive:      true,
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}

	s.audit(actorID, "EVENT_CREATED", map[string]interface{}{
		"event_id":   e.ID,
		"title":      e.Title,
		"event_date": e.EventDate.Format(time.RFC3339),
	}, ip)
	return e, nil
}

func (s *Service) Update(id uint, req *UpsertRequest, actorID *uint, ip string) (*Event, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	e.Title = req.Title
	e.Description = req.Description
	e.EventDate = eventDate
	e.Location = req.Location
	e.ContactPerson = req.ContactPerson
	e.ImageURL = req.ImageURL
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(e); err != nil {
		return nil, err
	}

	s.audit(actorID, "EVENT_UPDATED", map[string]interface{}{"event_id": e.ID, "title": e.Title}, ip)
	return e, nil
}

func (s *Service) Delete(id uint, actorID *uint, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.audit(actorID, "EVENT_DELETED", map[string]interface{}{"event_id": id}, ip)
	return nil
}

// parseEventDate accepts a full RFC3339 timestamp or a bare date. Either way
// the result is UTC: no fixed timezone offset is ever added or subtracted.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errBadDate
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}
