package handlers

import (
	"net/http"

	"vitta/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadMaintenance   = "failed to load maintenance"
	errSaveMaintenance   = "failed to save maintenance"
	errDeleteMaintenance = "failed to delete maintenance"
)

// maintenanceRequest is the create/update payload. machine_id is ignored on update.
type maintenanceRequest struct {
	MachineID         int     `json:"machine_id" example:"1"`
	Type              string  `json:"type" binding:"required" example:"Preventiva"`
	Description       string  `json:"description"`
	PerformedAt       string  `json:"performed_at" example:"2025-03-02"`
	NextScheduledDate string  `json:"next_scheduled_date" example:"02/09/2025"`
	Technician        string  `json:"technician"`
	Cost              float64 `json:"cost"`
}

func (r maintenanceRequest) toInput() (service.MaintenanceInput, error) {
	performed, err := parseBodyDate("performed_at", r.PerformedAt)
	if err != nil {
		return service.MaintenanceInput{}, err
	}
	next, err := parseBodyDate("next_scheduled_date", r.NextScheduledDate)
	if err != nil {
		return service.MaintenanceInput{}, err
	}
	return service.MaintenanceInput{
		MachineID:         r.MachineID,
		Type:              r.Type,
		Description:       r.Description,
		PerformedAt:       performed,
		NextScheduledDate: next,
		Technician:        r.Technician,
		Cost:              r.Cost,
	}, nil
}

// @Summary      List maintenance records
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, maintenance"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/maintenance [get]
// @Security     BearerAuth
func (h *Handler) listMaintenance(c *gin.Context) {
	list, err := h.services.Maintenance.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadMaintenance, "maintenance_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(list),
		"maintenance": list,
	})
}

// @Summary      Get maintenance record
// @Tags         maintenance
// @Produce      json
// @Param        id   path  int  true  "Maintenance ID"
// @Success      200  {object}  models.MaintenanceRecord
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/maintenance/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.services.Maintenance.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, errLoadMaintenance, "maintenance_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Record maintenance
// @Description  Requires technician role or higher; the machine must exist
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body  maintenanceRequest  true  "Maintenance"
// @Success      201   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance [post]
// @Security     BearerAuth
func (h *Handler) createMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.services.Maintenance.Create(c.Request.Context(), in)
	if err != nil {
		h.respondServiceError(c, err, errSaveMaintenance, "maintenance_create_failed", "machine_id", req.MachineID)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// @Summary      Update maintenance record
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Maintenance ID"
// @Param        body  body  maintenanceRequest  true  "Maintenance"
// @Success      200   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req maintenanceRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.services.Maintenance.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondServiceError(c, err, errSaveMaintenance, "maintenance_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete maintenance record
// @Tags         maintenance
// @Param        id  path  int  true  "Maintenance ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/maintenance/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Maintenance.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errDeleteMaintenance, "maintenance_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
