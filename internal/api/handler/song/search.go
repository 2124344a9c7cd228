package song

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
)

// Search godoc
// @Summary      Search songs
// @Description  Search playable songs for a free-text query
// @Tags         Songs
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {object} map[string]interface{} "Matching songs"
// @Failure      400 {object} map[string]string "Missing query"
// @Failure      404 {object} map[string]string "Nothing playable found"
// @Router       /v1/songs/search [get]
// @Security     ApiKeyAuth
func (h *SongHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	songs, err := h.resolver.Search(c, query)
	if err != nil {
		if errors.Is(err, constant.SongNotFoundErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs})
}
