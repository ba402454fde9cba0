package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/models"
	"vitta/internal/repository"
)

// AlertService derives alerts from the current machine inventory.
// Nothing it computes is stored.
type AlertService struct {
	machineRepo repository.MachineRepo
	now         func() time.Time
}

func NewAlertService(machineRepo repository.MachineRepo, now func() time.Time) *AlertService {
	if now == nil {
		now = time.Now
	}
	return &AlertService{machineRepo: machineRepo, now: now}
}

func (s *AlertService) List(ctx context.Context) ([]alerts.Alert, error) {
	machines, err := s.machineRepo.ListWithMaintenance(ctx)
	if err != nil {
		return nil, fmt.Errorf("load machines: %w", err)
	}
	return alerts.ComputeAlerts(toSnapshots(machines), s.now()), nil
}

func (s *AlertService) Summary(ctx context.Context) (alerts.Summary, error) {
	list, err := s.List(ctx)
	if err != nil {
		return alerts.Summary{}, err
	}
	return alerts.Summarize(list), nil
}

func toSnapshots(machines []models.Machine) []alerts.MachineSnapshot {
	out := make([]alerts.MachineSnapshot, 0, len(machines))
	for _, m := range machines {
		snap := alerts.MachineSnapshot{
			ID:                        strconv.Itoa(m.ID),
			Name:                      m.Name,
			AcquisitionDate:           m.AcquisitionDate,
			MaintenanceIntervalMonths: m.MaintenanceIntervalMonths,
			CalibrationIntervalMonths: m.CalibrationIntervalMonths,
		}
		if len(m.Maintenance) > 0 {
			snap.History = make([]alerts.MaintenanceEvent, 0, len(m.Maintenance))
			for _, r := range m.Maintenance {
				snap.History = append(snap.History, alerts.MaintenanceEvent{
					Type:              r.Type,
					NextScheduledDate: r.NextScheduledDate,
				})
			}
		}
		out = append(out, snap)
	}
	return out
}
