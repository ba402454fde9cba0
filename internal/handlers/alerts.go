package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadAlerts = "failed to load alerts"
)

// @Summary      List maintenance alerts
// @Description  Overdue first (most overdue first), then urgent and upcoming (soonest first). Dates are dd/MM/yyyy.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   alerts.Alert
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listAlerts(c *gin.Context) {
	list, err := h.services.Alerts.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadAlerts, "alerts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Alert counts per urgency
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  alerts.Summary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/summary [get]
// @Security     BearerAuth
func (h *Handler) alertSummary(c *gin.Context) {
	sum, err := h.services.Alerts.Summary(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadAlerts, "alerts_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
