package karaoke

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/api/request"
	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/pkg/paginator"
)

// AddSong godoc
// @Summary      Add song
// @Description  Resolve a song and append it to the session queue
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        code path string true "Access code"
// @Param        request body request.AddSongRequest true "Song query"
// @Success      200 {object} map[string]interface{} "Created queue entry"
// @Failure      400 {object} map[string]string "Invalid request"
// @Failure      404 {object} map[string]string "Session or song not found"
// @Router       /v1/sessions/{code}/queue [post]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) AddSong(c *gin.Context) {
	var req request.AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userId := c.MustGet(constant.UserIdKey).(string)
	entry, err := h.karaokeService.AddSong(c, c.Param("code"), userId, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// RemoveSong godoc
// @Summary      Remove song
// @Description  Remove a queue entry; removing an unknown entry is a no-op
// @Tags         Queue
// @Param        code path string true "Access code"
// @Param        entryId path string true "Queue entry id"
// @Success      200 {object} map[string]string "Queue updated"
// @Failure      400 {object} map[string]string "Malformed identifier"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code}/queue/{entryId} [delete]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) RemoveSong(c *gin.Context) {
	err := h.karaokeService.RemoveSong(c, c.Param("code"), c.Param("entryId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "queue updated"})
}

// PlayNext godoc
// @Summary      Play next
// @Description  Consume the current head of the fair order
// @Tags         Queue
// @Produce      json
// @Param        code path string true "Access code"
// @Success      200 {object} map[string]interface{} "Played entry, null when the queue is empty"
// @Failure      400 {object} map[string]string "Malformed access code"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code}/queue/next [post]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) PlayNext(c *gin.Context) {
	played, err := h.karaokeService.PlayNext(c, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"played": played})
}

// GetQueue godoc
// @Summary      Get queue
// @Description  Current fair-ordered queue for a session
// @Tags         Queue
// @Produce      json
// @Param        code path string true "Access code"
// @Success      200 {object} map[string]interface{} "Fair order snapshot"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code}/queue [get]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) GetQueue(c *gin.Context) {
	snap, err := h.karaokeService.Snapshot(c, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queue":       snap.Entries,
		"now_playing": snap.NowPlaying,
	})
}

// Join godoc
// @Summary      Join session
// @Description  Register the caller as connected to the session
// @Tags         Sessions
// @Param        code path string true "Access code"
// @Success      200 {object} map[string]string "Joined"
// @Failure      404 {object} map[string]string "Session not found"
// @Router       /v1/sessions/{code}/join [post]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) Join(c *gin.Context) {
	userId := c.MustGet(constant.UserIdKey).(string)
	if err := h.karaokeService.Join(c, c.Param("code"), userId); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joined"})
}

// History godoc
// @Summary      Playback history
// @Description  Songs already played in a session, newest first
// @Tags         Queue
// @Produce      json
// @Param        code path string true "Access code"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Playback records with pagination metadata"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /v1/sessions/{code}/history [get]
// @Security     ApiKeyAuth
func (h *KaraokeHandler) History(c *gin.Context) {
	pagination := paginator.New(c)

	records, total, err := h.historyService.List(c, c.Param("code"), pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    records,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.SessionNotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.SongNotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.InvalidIdentifierErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
