package service

import (
	"context"
	"fmt"

	"vitta/internal/models"
	"vitta/internal/repository"
)

type MachineService struct {
	machineRepo  repository.MachineRepo
	activityRepo repository.ActivityRepo
}

func NewMachineService(machineRepo repository.MachineRepo, activityRepo repository.ActivityRepo) *MachineService {
	return &MachineService{machineRepo: machineRepo, activityRepo: activityRepo}
}

func (s *MachineService) Create(ctx context.Context, in MachineInput) (models.Machine, error) {
	if err := in.normalize(); err != nil {
		return models.Machine{}, err
	}
	var m models.Machine
	in.apply(&m)

	id, err := s.machineRepo.Create(ctx, m)
	if err != nil {
		return models.Machine{}, err
	}
	created, err := s.Get(ctx, id)
	if err != nil {
		return models.Machine{}, err
	}
	err = record(ctx, s.activityRepo, models.ActivityMachineCreated,
		fmt.Sprintf("machine %q created", created.Name),
		map[string]any{"machine_id": id})
	return created, err
}

// Get returns ErrNotFound when the machine does not exist.
func (s *MachineService) Get(ctx context.Context, id int) (models.Machine, error) {
	m, err := s.machineRepo.Get(ctx, id)
	if err != nil {
		return models.Machine{}, err
	}
	if m == nil {
		return models.Machine{}, ErrNotFound
	}
	return *m, nil
}

func (s *MachineService) List(ctx context.Context) ([]models.Machine, error) {
	return s.machineRepo.List(ctx)
}

func (s *MachineService) Update(ctx context.Context, id int, in MachineInput) (models.Machine, error) {
	if err := in.normalize(); err != nil {
		return models.Machine{}, err
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return models.Machine{}, err
	}
	in.apply(&m)
	if err := s.machineRepo.Update(ctx, m); err != nil {
		return models.Machine{}, err
	}
	updated, err := s.Get(ctx, id)
	if err != nil {
		return models.Machine{}, err
	}
	err = record(ctx, s.activityRepo, models.ActivityMachineUpdated,
		fmt.Sprintf("machine %q updated", updated.Name),
		map[string]any{"machine_id": id})
	return updated, err
}

// Delete removes the machine and, via cascade, its maintenance history.
func (s *MachineService) Delete(ctx context.Context, id int) error {
	if err := s.machineRepo.Delete(ctx, id); err != nil {
		return err
	}
	return record(ctx, s.activityRepo, models.ActivityMachineDeleted,
		fmt.Sprintf("machine %d deleted", id),
		map[string]any{"machine_id": id})
}
