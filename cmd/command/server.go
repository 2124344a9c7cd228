package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"queueup/karaoke-backend/internal/api"
	karaokeHandler "queueup/karaoke-backend/internal/api/handler/karaoke"
	sessionHandler "queueup/karaoke-backend/internal/api/handler/session"
	songHandler "queueup/karaoke-backend/internal/api/handler/song"
	"queueup/karaoke-backend/internal/config"
	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/infra"
	"queueup/karaoke-backend/internal/notify"
	"queueup/karaoke-backend/internal/repository"
	"queueup/karaoke-backend/internal/resolver"
	historyService "queueup/karaoke-backend/internal/service/history"
	karaokeService "queueup/karaoke-backend/internal/service/karaoke"
	sessionService "queueup/karaoke-backend/internal/service/session"
	"queueup/karaoke-backend/internal/ws"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run karaoke queue server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	clickhouse, err := infra.NewClickHouseClient(cfg.Database.ClickHouse)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to clickhouse"))
		return
	}

	redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
		return
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
		}
	}()

	kafkaWriter := infra.NewKafkaWriter(cfg.Kafka, constant.TopicQueueUpdated)

	// create repositories
	sessionRepository := repository.NewSessionRepository(db.GetDb())
	historyRepository := repository.NewHistoryRepository(clickhouse.GetDb())

	// create notification publishers: in-process websocket hub plus the
	// kafka event stream for out-of-process consumers
	hub := notify.NewHub()
	defer hub.Close()
	kafkaPublisher := notify.NewKafkaPublisher(kafkaWriter, cmd.Logger)
	publisher := notify.Multi{hub, kafkaPublisher}

	// create the song resolver
	var songResolver resolver.SongResolver
	if cfg.YouTube.APIKey != "" {
		songResolver = resolver.NewYouTubeResolver(cfg.YouTube, redisClient, cmd.Logger)
	} else {
		cmd.Logger.Warn("no youtube api key configured, using stub resolver")
		songResolver = resolver.NewStubResolver()
	}

	// create services
	historyServiceInstance := historyService.NewHistoryService(historyRepository, cmd.Logger)
	registryInstance := sessionService.NewRegistryService(sessionRepository, cmd.Logger)
	karaokeServiceInstance := karaokeService.NewKaraokeService(
		sessionRepository,
		songResolver,
		publisher,
		historyServiceInstance,
		cmd.Logger,
	)

	// create handlers
	sessions := sessionHandler.New(registryInstance)
	karaoke := karaokeHandler.New(karaokeServiceInstance, historyServiceInstance)
	songs := songHandler.New(songResolver)
	wsHandlerInstance := ws.NewHandler(hub, registryInstance, cmd.Logger)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(sessions, karaoke, songs, wsHandlerInstance)

	// start background kafka workers
	for i := 0; i < constant.KafkaWorkerCount; i++ {
		go kafkaPublisher.ProduceUpdates(i)
	}
	cmd.Logger.WithContext(ctx).Infof("started %d kafka producer workers", constant.KafkaWorkerCount)

	defer func() {
		cmd.Logger.Info("stopping kafka publisher...")
		kafkaPublisher.Stop()
	}()

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}
