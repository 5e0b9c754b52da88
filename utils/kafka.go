package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/samajconnect/portal-backend/config"
)

var (
	kafkaWriter  *kafka.Writer
	kafkaBrokers []string
	kafkaTopic   string
)

// InitializeKafka prepares the audit-event writer. Kafka is optional: when
// KAFKA_BROKERS is unset the producer stays nil and callers fall back to
// writing audit rows directly.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("Kafka not configured, audit events will be written synchronously")
		return
	}

	kafkaBrokers = strings.Split(cfg.KafkaBrokers, ",")
	kafkaTopic = cfg.KafkaAuditTopic

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(kafkaBrokers...),
		Topic:        kafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	log.Printf("Kafka producer ready (topic %s)", kafkaTopic)
}

// KafkaEnabled reports whether the producer was initialized.
func KafkaEnabled() bool {
	return kafkaWriter != nil
}

// PublishAuditEvent writes one audit event payload to the audit topic.
func PublishAuditEvent(ctx context.Context, payload []byte) error {
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Value: payload,
		Time:  time.Now(),
	})
}

// NewAuditReader builds a consumer-group reader over the audit topic.
func NewAuditReader() *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaBrokers,
		GroupID:  "portal-audit-consumer",
		Topic:    kafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// CloseKafka flushes and closes the producer.
func CloseKafka() {
	if kafkaWriter != nil {
		_ = kafkaWriter.Close()
	}
}
