package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/notify"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin checks belong to the gateway in front of this service
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades viewer connections and streams queue updates for one
// session until the client goes away.
type Handler struct {
	hub      *notify.Hub
	snapshot snapshotter
	logger   *logrus.Logger
}

type snapshotter interface {
	Find(ctx context.Context, accessCode string) (*domain.SessionState, error)
}

func NewHandler(hub *notify.Hub, snapshot snapshotter, logger *logrus.Logger) *Handler {
	return &Handler{
		hub:      hub,
		snapshot: snapshot,
		logger:   logger,
	}
}

func (h *Handler) Subscribe(c *gin.Context) {
	code := c.Param("code")

	// validate the session before upgrading so unknown codes get a
	// proper HTTP status instead of an immediate close
	state, err := h.snapshot.Find(c, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf("ws: upgrade failed for session %s: %v", code, err)
		return
	}
	defer conn.Close()

	updates, unsub := h.hub.Subscribe(state.Session.AccessCode)
	defer unsub()

	// discard client frames but notice disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(update); err != nil {
				h.logger.Debugf("ws: viewer of %s dropped: %v", code, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.Request.Context().Done():
			return
		}
	}
}
