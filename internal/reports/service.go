package reports

import (
	"context"

	"github.com/samajconnect/portal-backend/internal/auditlog"
	"github.com/samajconnect/portal-backend/internal/member"
)

type Service struct {
	memberRepo *member.Repository
	exporter   Exporter
	auditSvc   auditlog.Service
}

func NewService(memberRepo *member.Repository, exporter Exporter, auditSvc auditlog.Service) *Service {
	return &Service{memberRepo: memberRepo, exporter: exporter, auditSvc: auditSvc}
}

// ExportMembers builds a directory export in the requested format, applying
// the same search filter the directory listing uses.
func (s *Service) ExportMembers(format, search string, actorID *uint, ip string) ([]byte, string, string, error) {
	members, _, err := s.memberRepo.FetchAll(search)
	if err != nil {
		return nil, "", "", err
	}

	data, filename, contentType, err := s.exporter.ExportMembers(format, members)
	if err != nil {
		return nil, "", "", err
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.LogAction(context.Background(), actorID, "MEMBERS_EXPORTED", map[string]interface{}{
			"format": format,
			"search": search,
			"count":  len(members),
		}, ip, "SUCCESS")
	}

	return data, filename, contentType, nil
}
