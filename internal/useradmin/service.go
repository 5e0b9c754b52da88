package useradmin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/samajconnect/portal-backend/internal/auditlog"
	"github.com/samajconnect/portal-backend/internal/auth"
	"github.com/samajconnect/portal-backend/internal/committee"
	"github.com/samajconnect/portal-backend/internal/event"
	"github.com/samajconnect/portal-backend/internal/member"
	"github.com/samajconnect/portal-backend/utils"
)

var ErrEmailTaken = errors.New("a user with this email already exists")

// Stats summarizes the portal for the admin dashboard.
type Stats struct {
	TotalMembers     int64 `json:"totalMembers"`
	PendingApprovals int64 `json:"pendingApprovals"`
	TotalEvents      int64 `json:"totalEvents"`
	TotalCommittees  int64 `json:"totalCommittees"`
}

type Service struct {
	repo          *Repository
	memberRepo    *member.Repository
	eventRepo     *event.Repository
	committeeRepo *committee.Repository
	auditSvc      auditlog.Service
}

func NewService(repo *Repository, memberRepo *member.Repository, eventRepo *event.Repository, committeeRepo *committee.Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		repo:          repo,
		memberRepo:    memberRepo,
		eventRepo:     eventRepo,
		committeeRepo: committeeRepo,
		auditSvc:      auditSvc,
	}
}

func (s *Service) List() ([]auth.User, error) {
	return s.repo.List()
}

func (s *Service) Create(req CreateRequest, actorID *uint, ip string) (*auth.User, error) {
	email := auth.NormalizeEmail(req.Email)
	taken, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role != auth.RoleAdmin {
		role = auth.RoleMember
	}

	user := &auth.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   req.IsApproved,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.audit(actorID, "USER_CREATED", map[string]interface{}{"user_id": user.ID, "email": user.Email, "role": user.Role}, ip)
	return user, nil
}

func (s *Service) Update(id uint, req UpdateRequest, actorID *uint, ip string) (*auth.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = auth.NormalizeEmail(*req.Email)
	}
	if req.Role != nil {
		if *req.Role == auth.RoleAdmin {
			user.Role = auth.RoleAdmin
		} else {
			user.Role = auth.RoleMember
		}
	}
	if req.IsApproved != nil {
		user.IsApproved = *req.IsApproved
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	s.audit(actorID, "USER_UPDATED", map[string]interface{}{"user_id": user.ID}, ip)
	return user, nil
}

func (s *Service) Delete(id uint, actorID *uint, ip string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.audit(actorID, "USER_DELETED", map[string]interface{}{"user_id": id}, ip)
	return nil
}

// Approve unlocks login for a registered member and notifies them by email.
func (s *Service) Approve(id uint, actorID *uint, ip string) (*auth.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.IsApproved = true
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	if err := utils.SendApprovalNotice(user.Email); err != nil {
		log.Printf("approval notice to %s failed: %v", user.Email, err)
	}
	s.audit(actorID, "USER_APPROVED", map[string]interface{}{"user_id": user.ID, "email": user.Email}, ip)
	return user, nil
}

// ResetPassword sets a random temporary password and returns it. The value
// is shown once to the admin and never stored in clear.
func (s *Service) ResetPassword(id uint, actorID *uint, ip string) (string, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	password := hex.EncodeToString(buf)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)
	if err := s.repo.Update(user); err != nil {
		return "", err
	}

	s.audit(actorID, "USER_PASSWORD_RESET", map[string]interface{}{"user_id": user.ID}, ip)
	return password, nil
}

func (s *Service) GetStats() (*Stats, error) {
	totalMembers, err := s.memberRepo.CountActive()
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingApprovals()
	if err != nil {
		return nil, err
	}
	totalEvents, err := s.eventRepo.CountActive()
	if err != nil {
		return nil, err
	}
	totalCommittees, err := s.committeeRepo.CountActive()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalMembers:     totalMembers,
		PendingApprovals: pending,
		TotalEvents:      totalEvents,
		TotalCommittees:  totalCommittees,
	}, nil
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
}
