package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vitta/internal/service"

	"github.com/gin-gonic/gin"
)

const errLoadActivity = "failed to load activity"

// Accepted layouts for the from/to filters, most specific first. Date-only
// layouts are flagged so an upper bound can be widened to the end of the day.
var activityTimeLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{time.RFC3339, false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", true},
	{"02/01/2006", true},
}

var errReversedRange = errors.New("'from' must be <= 'to'")

// @Summary      List activity
// @Description  Audit trail of machine, maintenance and user changes. 'from' and 'to' accept RFC3339, 'YYYY-MM-DD HH:MM:SS', 'YYYY-MM-DD' or 'dd/MM/yyyy'; a date-only 'to' covers the whole day.
// @Tags         activity
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2025-08-01)
// @Param        to    query   string  false  "End of range, inclusive"  example(31/08/2025)
// @Param        type  query   string  false  "Activity type"  Enums(MACHINE_CREATED,MACHINE_UPDATED,MACHINE_DELETED,MAINTENANCE_CREATED,MAINTENANCE_UPDATED,MAINTENANCE_DELETED,USER_ROLE_CHANGED,USER_DELETED)
// @Success      200   {object}  map[string]interface{}  "count, activity"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/activity [get]
// @Security     BearerAuth
func (h *Handler) getActivity(c *gin.Context) {
	filter, err := activityFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.services.ActivityLog.List(c.Request.Context(), filter)
	switch {
	case err == nil:
	case service.IsInvalidFilter(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadActivity, "activity_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(entries),
		"activity": entries,
	})
}

func activityFilterFromQuery(c *gin.Context) (service.LogFilter, error) {
	f := service.LogFilter{Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	if s := strings.TrimSpace(c.Query("from")); s != "" {
		t, _, err := parseQueryTime(s)
		if err != nil {
			return f, fmt.Errorf("invalid 'from': %w", err)
		}
		f.From = t
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		t, dateOnly, err := parseQueryTime(s)
		if err != nil {
			return f, fmt.Errorf("invalid 'to': %w", err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = t
	}

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, errReversedRange
	}
	return f, nil
}

// parseQueryTime returns the instant in UTC and whether s carried no time of day.
func parseQueryTime(s string) (time.Time, bool, error) {
	for _, l := range activityTimeLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return t.UTC(), l.dateOnly, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized time %q; use RFC3339, YYYY-MM-DD or dd/MM/yyyy", s)
}
