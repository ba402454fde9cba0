package models

import "time"

// Machine statuses.
const (
	MachineActive        = "Ativo"
	MachineInactive      = "Inativo"
	MachineInMaintenance = "Em Manutenção"
)

// Machine is a piece of hospital equipment under a maintenance plan.
// A nil or zero interval means that schedule is not tracked.
type Machine struct {
	ID                        int        `json:"id"`
	Name                      string     `json:"name"`
	Model                     string     `json:"model,omitempty"`
	Manufacturer              string     `json:"manufacturer,omitempty"`
	SerialNumber              string     `json:"serial_number,omitempty"`
	Location                  string     `json:"location,omitempty"`
	AcquisitionDate           *time.Time `json:"acquisition_date,omitempty"`
	MaintenanceIntervalMonths *int       `json:"maintenance_interval_months,omitempty"`
	CalibrationIntervalMonths *int       `json:"calibration_interval_months,omitempty"`
	Status                    string     `json:"status"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`

	// Maintenance is only filled by ListWithMaintenance.
	Maintenance []MaintenanceRecord `json:"maintenance,omitempty"`
}

// ValidMachineStatus reports whether s is a known machine status.
func ValidMachineStatus(s string) bool {
	switch s {
	case MachineActive, MachineInactive, MachineInMaintenance:
		return true
	}
	return false
}
