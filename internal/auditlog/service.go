package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/samajconnect/portal-backend/utils"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetAuditLogs(ctx context.Context, filter Filter) (*Paginated, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records an audit entry. When Kafka is configured the event is
// published and persisted by the consumer; otherwise it is written directly.
func (s *service) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	event := Event{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
		Status:    status,
	}

	if utils.KafkaEnabled() {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := utils.PublishAuditEvent(ctx, payload); err != nil {
			// Kafka being down must not drop the trail.
			log.Printf("audit publish failed, writing directly: %v", err)
			return s.persist(ctx, event)
		}
		return nil
	}

	return s.persist(ctx, event)
}

func (s *service) persist(ctx context.Context, event Event) error {
	detailsJSON, err := json.Marshal(event.Details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	return s.repo.Create(ctx, &AuditLog{
		UserID:    event.UserID,
		Action:    event.Action,
		Details:   detailsJSON,
		IPAddress: event.IPAddress,
		Status:    event.Status,
	})
}

func (s *service) GetAuditLogs(ctx context.Context, filter Filter) (*Paginated, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &Paginated{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error) {
	log, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit log not found: %w", err)
	}
	return log, nil
}
