package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vitta/internal/metrics"
	"vitta/internal/models"
	"vitta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Gin context keys set by userIdMiddleware.
const (
	ctxUserID   = "userId"
	ctxUserRole = "userRole"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	// Browsers cannot set headers on a WebSocket handshake.
	if header == "" && websocket.IsWebSocketUpgrade(c.Request) {
		if tok := c.Query("access_token"); tok != "" {
			header = "Bearer " + tok
		}
	}
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// the claim may be stale after a demotion or deletion
	role, err := h.services.CurrentRole(claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "user no longer exists",
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_role_lookup_failed", "err", err, "user_id", claims.UserID)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to verify user",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserRole, role)
	c.Next()
}

// requireRole rejects callers below minRole in the viewer < technician < admin order.
// Must run after userIdMiddleware.
func requireRole(minRole string) gin.HandlerFunc {
	minLevel := models.RoleLevel[minRole]
	return func(c *gin.Context) {
		role := c.GetString(ctxUserRole)
		if models.RoleLevel[role] < minLevel {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

// metricsMiddleware records request count and latency per route template.
func (h *Handler) metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
