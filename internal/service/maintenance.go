package service

import (
	"context"
	"fmt"

	"vitta/internal/models"
	"vitta/internal/repository"
)

type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepo
	machineRepo     repository.MachineRepo
	activityRepo    repository.ActivityRepo
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepo,
	machineRepo repository.MachineRepo,
	activityRepo repository.ActivityRepo,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		machineRepo:     machineRepo,
		activityRepo:    activityRepo,
	}
}

func (s *MaintenanceService) requireMachine(ctx context.Context, id int) error {
	m, err := s.machineRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("machine %d: %w", id, ErrNotFound)
	}
	return nil
}

// Create returns ErrNotFound when the referenced machine does not exist.
func (s *MaintenanceService) Create(ctx context.Context, in MaintenanceInput) (models.MaintenanceRecord, error) {
	if err := in.normalize(); err != nil {
		return models.MaintenanceRecord{}, err
	}
	if err := s.requireMachine(ctx, in.MachineID); err != nil {
		return models.MaintenanceRecord{}, err
	}

	rec := models.MaintenanceRecord{MachineID: in.MachineID}
	in.apply(&rec)
	id, err := s.maintenanceRepo.Create(ctx, rec)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	created, err := s.Get(ctx, id)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	err = record(ctx, s.activityRepo, models.ActivityMaintenanceCreated,
		fmt.Sprintf("%s recorded for machine %d", created.Type, created.MachineID),
		map[string]any{"maintenance_id": id, "machine_id": created.MachineID})
	return created, err
}

func (s *MaintenanceService) Get(ctx context.Context, id int) (models.MaintenanceRecord, error) {
	r, err := s.maintenanceRepo.Get(ctx, id)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	if r == nil {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	return *r, nil
}

func (s *MaintenanceService) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return s.maintenanceRepo.List(ctx)
}

// ListByMachine distinguishes a missing machine (ErrNotFound) from an empty history.
func (s *MaintenanceService) ListByMachine(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	if err := s.requireMachine(ctx, machineID); err != nil {
		return nil, err
	}
	return s.maintenanceRepo.ListByMachine(ctx, machineID)
}

func (s *MaintenanceService) Update(ctx context.Context, id int, in MaintenanceInput) (models.MaintenanceRecord, error) {
	if err := in.normalize(); err != nil {
		return models.MaintenanceRecord{}, err
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	in.apply(&rec)
	if err := s.maintenanceRepo.Update(ctx, rec); err != nil {
		return models.MaintenanceRecord{}, err
	}
	err = record(ctx, s.activityRepo, models.ActivityMaintenanceUpdated,
		fmt.Sprintf("maintenance %d updated", id),
		map[string]any{"maintenance_id": id, "machine_id": rec.MachineID})
	return rec, err
}

func (s *MaintenanceService) Delete(ctx context.Context, id int) error {
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	return record(ctx, s.activityRepo, models.ActivityMaintenanceDeleted,
		fmt.Sprintf("maintenance %d deleted", id),
		map[string]any{"maintenance_id": id})
}
