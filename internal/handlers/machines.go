package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadMachines  = "failed to load machines"
	errSaveMachine   = "failed to save machine"
	errDeleteMachine = "failed to delete machine"
)

// machineRequest is the create/update payload. Dates accept YYYY-MM-DD or dd/MM/yyyy.
type machineRequest struct {
	Name                      string `json:"name" binding:"required" example:"Ventilador Pulmonar"`
	Model                     string `json:"model"`
	Manufacturer              string `json:"manufacturer"`
	SerialNumber              string `json:"serial_number"`
	Location                  string `json:"location" example:"UTI 2"`
	AcquisitionDate           string `json:"acquisition_date" example:"2023-01-15"`
	MaintenanceIntervalMonths *int   `json:"maintenance_interval_months" example:"6"`
	CalibrationIntervalMonths *int   `json:"calibration_interval_months" example:"12"`
	Status                    string `json:"status" example:"Ativo"`
}

func (r machineRequest) toInput() (service.MachineInput, error) {
	acquired, err := parseBodyDate("acquisition_date", r.AcquisitionDate)
	if err != nil {
		return service.MachineInput{}, err
	}
	return service.MachineInput{
		Name:                      r.Name,
		Model:                     r.Model,
		Manufacturer:              r.Manufacturer,
		SerialNumber:              r.SerialNumber,
		Location:                  r.Location,
		AcquisitionDate:           acquired,
		MaintenanceIntervalMonths: r.MaintenanceIntervalMonths,
		CalibrationIntervalMonths: r.CalibrationIntervalMonths,
		Status:                    r.Status,
	}, nil
}

// parseBodyDate treats an empty string as absent.
func parseBodyDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := alerts.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q; use YYYY-MM-DD or dd/MM/yyyy", field, s)
	}
	return &d, nil
}

// @Summary      List machines
// @Tags         machines
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, machines"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/machines [get]
// @Security     BearerAuth
func (h *Handler) listMachines(c *gin.Context) {
	list, err := h.services.Machines.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadMachines, "machines_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(list),
		"machines": list,
	})
}

// @Summary      Get machine
// @Tags         machines
// @Produce      json
// @Param        id   path  int  true  "Machine ID"
// @Success      200  {object}  models.Machine
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.services.Machines.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, errLoadMachines, "machine_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Maintenance history of a machine
// @Tags         machines
// @Produce      json
// @Param        id   path  int  true  "Machine ID"
// @Success      200  {object}  map[string]interface{}  "count, maintenance"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id}/maintenance [get]
// @Security     BearerAuth
func (h *Handler) listMachineMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.services.Maintenance.ListByMachine(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, errLoadMaintenance, "machine_maintenance_list_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(list),
		"maintenance": list,
	})
}

// @Summary      Create machine
// @Description  Requires technician role or higher
// @Tags         machines
// @Accept       json
// @Produce      json
// @Param        body  body  machineRequest  true  "Machine"
// @Success      201   {object}  models.Machine
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/machines [post]
// @Security     BearerAuth
func (h *Handler) createMachine(c *gin.Context) {
	var req machineRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.services.Machines.Create(c.Request.Context(), in)
	if err != nil {
		h.respondServiceError(c, err, errSaveMachine, "machine_create_failed", "user_id", c.GetInt(ctxUserID))
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Update machine
// @Description  Full replacement of the writable fields; requires technician role or higher
// @Tags         machines
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Machine ID"
// @Param        body  body  machineRequest  true  "Machine"
// @Success      200   {object}  models.Machine
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/machines/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req machineRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.services.Machines.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondServiceError(c, err, errSaveMachine, "machine_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Delete machine
// @Description  Also removes its maintenance history; admin only
// @Tags         machines
// @Param        id  path  int  true  "Machine ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMachine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Machines.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errDeleteMachine, "machine_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
