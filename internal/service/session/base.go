package session

import (
	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/domain"
)

type registryService struct {
	store  domain.SessionStore
	logger *logrus.Logger
}

func NewRegistryService(store domain.SessionStore, logger *logrus.Logger) *registryService {
	return &registryService{
		store:  store,
		logger: logger,
	}
}
