package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"queueup/karaoke-backend/internal/constant"
)

// HandleAuth trusts the user id header set by the auth gateway in front
// of this service. Token issuance and validation live there, not here.
func HandleAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := strings.TrimSpace(c.GetHeader("X-Auth-User-Id"))

		if userId == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": http.StatusUnauthorized,
				"msg":  "user is not authorized",
			})
			return
		}

		c.Set(constant.UserIdKey, userId)
		c.Next()
	}
}
