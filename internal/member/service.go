package member

import (
	"context"

	"github.com/samajconnect/portal-backend/internal/auditlog"
)

// DirectoryPage is the admin directory listing: the requested slice plus the
// total number of matches.
type DirectoryPage struct {
	Members []Member `json:"members"`
	Total   int64    `json:"total"`
}

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// GetDirectory fetches the complete matching directory, then slices the
// caller-facing page out of it. The full fetch happens regardless of
// page/limit; passing limit <= 0 returns everything.
func (s *Service) GetDirectory(search string, page, limit int) (*DirectoryPage, error) {
	all, total, err := s.Repo.FetchAll(search)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		return &DirectoryPage{Members: all, Total: total}, nil
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(all) {
		return &DirectoryPage{Members: []Member{}, Total: total}, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return &DirectoryPage{Members: all[start:end], Total: total}, nil
}

// ListPublic returns the active member set for the public directory page.
func (s *Service) ListPublic() ([]Member, error) {
	return s.Repo.ListActive()
}

func (s *Service) GetByID(id uint) (*Member, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) Create(req *UpsertRequest, actorID *uint, ip string) (*Member, error) {
	m := fromRequest(req)

	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}

	s.audit(actorID, "MEMBER_CREATED", map[string]interface{}{
		"member_id":        m.ID,
		"family_head_name": m.FamilyHeadName,
	}, ip)

	return m, nil
}

func (s *Service) Update(id uint, req *UpsertRequest, actorID *uint, ip string) (*Member, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	applyRequest(m, req)
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}

	s.audit(actorID, "MEMBER_UPDATED", map[string]interface{}{
		"member_id":        m.ID,
		"family_head_name": m.FamilyHeadName,
	}, ip)

	return m, nil
}

func (s *Service) Delete(id uint, actorID *uint, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.audit(actorID, "MEMBER_DELETED", map[string]interface{}{"member_id": id}, ip)
	return nil
}

// CreateFromRegistration implements auth.ProfileCreator: a self-registered
// account gets a minimal directory row linked by user id.
func (s *Service) CreateFromRegistration(userID uint, name, phone, address, occupation string) error {
	m := &Member{
		UserID:         &userID,
		Name:           name,
		FamilyHeadName: name,
		HomeAddress:    address,
		MobileNo1:      phone,
		Business:       occupation,
		TotalMembers:   1,
		Status:         "active",
		IsActive:       true,
	}
	return s.Repo.Create(m)
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
	}
}

func fromRequest(req *UpsertRequest) *Member {
	m := &Member{}
	applyRequest(m, req)
	if m.TotalMembers == 0 {
		m.TotalMembers = 1
	}
	if m.Status == "" {
		m.Status = "active"
	}
	return m
}

func applyRequest(m *Member, req *UpsertRequest) {
	m.Name = req.Name
	m.FirmFullName = req.FirmFullName
	m.FamilyHeadName = req.FamilyHeadName
	m.FirmAddress = req.FirmAddress
	m.FirmColony = req.FirmColony
	m.FirmState = req.FirmState
	m.FirmDistrict = req.FirmDistrict
	m.FirmCity = req.FirmCity
	m.HomeAddress = req.HomeAddress
	m.State = req.State
	m.District = req.District
	m.City = req.City
	m.Business = req.Business
	m.MobileNo1 = req.MobileNo1
	m.MobileNo2 = req.MobileNo2
	m.MobileNo3 = req.MobileNo3
	m.OfficeNo = req.OfficeNo
	m.PhoneNo = req.PhoneNo
	m.Email = req.Email
	m.Gotra = req.Gotra
	if req.TotalMembers > 0 {
		m.TotalMembers = req.TotalMembers
	}
	if req.Status != "" {
		m.Status = req.Status
	}
	m.ImageURL = req.ImageURL
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	} else if m.ID == 0 {
		m.IsActive = true
	}
}
