package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vitta/internal/models"
	"vitta/internal/repository"
)

var (
	// ErrValidation marks input the caller must fix; handlers map it to 400.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = repository.ErrNotFound
)

// LogFilter supports activity filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "MACHINE_CREATED", "MAINTENANCE_DELETED", ...
}

// MachineInput is the writable part of a machine.
type MachineInput struct {
	Name                      string
	Model                     string
	Manufacturer              string
	SerialNumber              string
	Location                  string
	AcquisitionDate           *time.Time
	MaintenanceIntervalMonths *int
	CalibrationIntervalMonths *int
	Status                    string
}

func (in *MachineInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := checkInterval("maintenance_interval_months", in.MaintenanceIntervalMonths); err != nil {
		return err
	}
	if err := checkInterval("calibration_interval_months", in.CalibrationIntervalMonths); err != nil {
		return err
	}
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = models.MachineActive
	}
	if !models.ValidMachineStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	return nil
}

func checkInterval(field string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	return nil
}

func (in MachineInput) apply(m *models.Machine) {
	m.Name = in.Name
	m.Model = in.Model
	m.Manufacturer = in.Manufacturer
	m.SerialNumber = in.SerialNumber
	m.Location = in.Location
	m.AcquisitionDate = in.AcquisitionDate
	m.MaintenanceIntervalMonths = in.MaintenanceIntervalMonths
	m.CalibrationIntervalMonths = in.CalibrationIntervalMonths
	m.Status = in.Status
}

// MaintenanceInput is the writable part of a maintenance record.
// MachineID is ignored on update.
type MaintenanceInput struct {
	MachineID         int
	Type              string
	Description       string
	PerformedAt       *time.Time
	NextScheduledDate *time.Time
	Technician        string
	Cost              float64
}

func (in *MaintenanceInput) normalize() error {
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if in.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", ErrValidation)
	}
	return nil
}

func (in MaintenanceInput) apply(r *models.MaintenanceRecord) {
	r.Type = in.Type
	r.Description = in.Description
	r.PerformedAt = in.PerformedAt
	r.NextScheduledDate = in.NextScheduledDate
	r.Technician = in.Technician
	r.Cost = in.Cost
}
