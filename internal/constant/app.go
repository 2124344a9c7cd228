package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	UserIdKey = "user_id"

	AccessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	AccessCodeLength   = 6
	// Collisions on a 36^6 code space are negligible but still retried.
	CreateSessionMaxAttempts = 5

	RedisSearchKeyPrefix = "karaoke:search:"
	SearchCacheTTL       = 10 * time.Minute

	TopicQueueUpdated  = "karaoke.queue.updated"
	KafkaProducerAcks  = kafka.RequireAll
	KafkaWriteTimeout  = 5 * time.Second
	KafkaWorkerCount   = 4
	KafkaWorkerBufSize = 4096 // capacity of in-memory channel; tune by memory and expected bursts
	KafkaWriteRetries  = 3
	KafkaRetryBackoff  = 500 * time.Millisecond

	DBTxTimeout = 2 * time.Second // keep transactions short

	HistoryInsertTimeout = 3 * time.Second
)
