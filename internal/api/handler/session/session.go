package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/queue"
)

// Create godoc
// @Summary      Create session
// @Description  Create a new karaoke session with a fresh access code
// @Tags         Sessions
// @Produce      json
// @Success      200 {object} map[string]interface{} "Created session"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/sessions [post]
// @Security     ApiKeyAuth
func (h *SessionHandler) Create(c *gin.Context) {
	state, err := h.registry.Create(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessionPayload(state))
}

// Get godoc
// @Summary      Get session
// @Description  Fetch a session and its current fair-ordered queue
// @Tags         Sessions
// @Produce      json
// @Param        code path string true "Access code"
// @Success      200 {object} map[string]interface{} "Session with queue"
// @Failure      400 {object} map[string]string "Malformed access code"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code} [get]
// @Security     ApiKeyAuth
func (h *SessionHandler) Get(c *gin.Context) {
	state, err := h.registry.Find(c, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionPayload(state))
}

// End godoc
// @Summary      End session
// @Description  End a session, discarding its queue and rotation
// @Tags         Sessions
// @Param        code path string true "Access code"
// @Success      204 "Session ended"
// @Failure      400 {object} map[string]string "Malformed access code"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code} [delete]
// @Security     ApiKeyAuth
func (h *SessionHandler) End(c *gin.Context) {
	if err := h.registry.End(c, c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func sessionPayload(state *domain.SessionState) gin.H {
	snap := queue.ComputeFairOrder(state.Entries, state.Rotation)
	return gin.H{
		"access_code":     state.Session.AccessCode,
		"status":          state.Session.Status,
		"connected_users": state.Session.ConnectedUsers,
		"queue":           snap.Entries,
		"now_playing":     snap.NowPlaying,
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.SessionNotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.InvalidIdentifierErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
