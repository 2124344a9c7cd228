package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

// KafkaPublisher produces queue updates to the karaoke.queue.updated
// topic, keyed by access code so one session's updates stay ordered on a
// single partition. Writes happen on background workers fed from a
// buffered channel; when the buffer is full the update is dropped with a
// log line, never blocking the mutation path.
type KafkaPublisher struct {
	writer   *kafka.Writer
	logger   *logrus.Logger
	workChan chan domain.QueueUpdate
}

func NewKafkaPublisher(writer *kafka.Writer, logger *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:   writer,
		logger:   logger,
		workChan: make(chan domain.QueueUpdate, constant.KafkaWorkerBufSize),
	}
}

func (p *KafkaPublisher) Publish(_ context.Context, update domain.QueueUpdate) {
	select {
	case p.workChan <- update:
	default:
		p.logger.Warnf("kafka publisher: buffer full, dropping update for session %s", update.AccessCode)
	}
}

// ProduceUpdates drains the work channel until Stop closes it. Run one
// goroutine per worker.
func (p *KafkaPublisher) ProduceUpdates(workerID int) {
	for update := range p.workChan {
		payload, err := json.Marshal(update)
		if err != nil {
			p.logger.Error(errors.Wrap(err, "kafka publisher: failed to marshal update"))
			continue
		}

		var written bool
		for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
			err = p.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(update.AccessCode),
				Value: payload,
				Time:  time.Now(),
			})
			cancel()
			if err == nil {
				written = true
				break
			}
			p.logger.Warnf("kafka worker %d: write attempt %d failed: %v", workerID, attempt+1, err)
			time.Sleep(constant.KafkaRetryBackoff * time.Duration(attempt+1))
		}
		if !written {
			// best-effort transport: the websocket hub already served
			// connected viewers, so the update is dropped after retries
			p.logger.Errorf("kafka worker %d: giving up on update for session %s", workerID, update.AccessCode)
		}
	}
}

func (p *KafkaPublisher) Stop() {
	close(p.workChan)
}
