package models

import "time"

// Common maintenance record types. Type is free text; only the preventive
// and calibration labels drive alert schedules.
const (
	MaintenancePreventive  = "Preventiva"
	MaintenanceCalibration = "Calibração"
	MaintenanceCorrective  = "Corretiva"
)

// MaintenanceRecord is one maintenance performed (or logged) on a machine.
type MaintenanceRecord struct {
	ID                int        `json:"id"`
	MachineID         int        `json:"machine_id"`
	Type              string     `json:"type"`
	Description       string     `json:"description,omitempty"`
	PerformedAt       *time.Time `json:"performed_at,omitempty"`
	NextScheduledDate *time.Time `json:"next_scheduled_date,omitempty"` // when the next one is due
	Technician        string     `json:"technician,omitempty"`
	Cost              float64    `json:"cost,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
