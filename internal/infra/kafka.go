package infra

import (
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"queueup/karaoke-backend/internal/config"
	"queueup/karaoke-backend/internal/constant"
)

func NewKafkaWriter(cfg config.Kafka, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // one session's updates stay on one partition
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // workers perform sync writes with timeout + retries
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    1024,
	}
}
