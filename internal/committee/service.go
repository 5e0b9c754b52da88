package committee

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

func (s *Service) ListAdmin() ([]View, error) {
	committees, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	return flatten(committees), nil
}

func (s *Service) ListPublic() ([]View, error) {
	committees, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}
	return flatten(committees), nil
}

func (s *Service) Create(req *UpsertRequest, actorID *uint, ip string) (*Committee, error) {
	cm := &Committee{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PdfURL:      req.PdfURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		cm.IsActive = *req.IsActive
	}

	if err := s.Repo.Create(cm); err != nil {
		return nil, err
	}

	s.audit(actorID, "COMMITTEE_CREATED", map[string]interface{}{"committee_id": cm.ID, "name": cm.Name}, ip)
	return cm, nil
}

func (s *Service) Update(id uint, req *UpsertRequest, actorID *uint, ip string) (*Committee, error) {
	cm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	cm.Name = req.Name
	cm.Description = req.Description
	cm.ImageURL = req.ImageURL
	cm.PdfURL = req.PdfURL
	if req.IsActive != nil {
		cm.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(cm); err != nil {
		return nil, err
	}

	s.audit(actorID, "COMMITTEE_UPDATED", map[string]interface{}{"committee_id": cm.ID, "name": cm.Name}, ip)
	return cm, nil
}

func (s *Service) Delete(id uint, actorID *uint, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.audit(actorID, "COMMITTEE_DELETED", map[string]interface{}{"committee_id": id}, ip)
	return nil
}

func (s *Service) AddMember(committeeID uint, req *AssignRequest, actorID *uint, ip string) (*CommitteeMember, error) {
	// The committee must exist before an assignment is taken.
	if _, err := s.Repo.GetByID(committeeID); err != nil {
		return nil, err
	}

	assignment := &CommitteeMember{
		CommitteeID: committeeID,
		MemberID:    req.MemberID,
		Position:    req.Position,
	}
	if err := s.Repo.AddMember(assignment); err != nil {
		return nil, err
	}

	s.audit(actorID, "COMMITTEE_MEMBER_ADDED", map[string]interface{}{
		"committee_id": committeeID,
		"member_id":    req.MemberID,
		"position":     req.Position,
	}, ip)
	return assignment, nil
}

func (s *Service) RemoveMember(committeeID, assignmentID uint, actorID *uint, ip string) error {
	if err := s.Repo.RemoveMember(committeeID, assignmentID); err != nil {
		return err
	}
	s.audit(actorID, "COMMITTEE_MEMBER_REMOVED", map[string]interface{}{
		"committee_id":  committeeID,
		"assignment_id": assignmentID,
	}, ip)
	return nil
}

func flatten(committees []Committee) []View {
	views := make([]View, 0, len(committees))
	for _, cm := range committees {
		view := View{Committee: cm, Members: []MemberView{}}
		for _, a := range cm.Assignments {
			view.Members = append(view.Members, MemberView{
				ID:                a.MemberID,
				Name:              a.Member.Name,
				ImageURL:          a.Member.ImageURL,
				Position:          a.Position,
				CommitteeMemberID: a.ID,
			})
		}
		views = append(views, view)
	}
	return views
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}
