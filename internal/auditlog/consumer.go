package auditlog

import (
	"context"
	"encoding/json"
	"log"

	"github.com/samajconnect/portal-backend/utils"
)

// StartKafkaConsumer drains the audit topic and persists each event. It runs
// until the process exits and is a no-op when Kafka is not configured.
func StartKafkaConsumer(repo Repository) {
	if !utils.KafkaEnabled() {
		return
	}

	go func() {
		reader := utils.NewAuditReader()
		defer reader.Close()

		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("audit consumer stopped: %v", err)
				return
			}

			var event Event
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("skipping malformed audit event: %v", err)
				continue
			}

			detailsJSON, err := json.Marshal(event.Details)
			if err != nil {
				detailsJSON = []byte("{}")
			}

			entry := &AuditLog{
				UserID:    event.UserID,
				Action:    event.Action,
				Details:   detailsJSON,
				IPAddress: event.IPAddress,
				Status:    event.Status,
			}
			if err := repo.Create(context.Background(), entry); err != nil {
				log.Printf("failed to persist audit event %s: %v", event.Action, err)
			}
		}
	}()
}
