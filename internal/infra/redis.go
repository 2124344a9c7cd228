package infra

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/redis/go-redis/v9"

	"queueup/karaoke-backend/internal/config"
)

func NewRedisClient(ctx context.Context, cfg config.Redis, logger *log.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	logger.Infof("redis is running on %s:%d on db %d", cfg.Host, cfg.Port, cfg.Database)

	return rdb, nil
}
