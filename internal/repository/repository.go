package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vitta/internal/models"
)

// ErrNotFound is returned by Update/Delete when no row matched.
var ErrNotFound = errors.New("not found")

type Authorization interface {
	Create(username, hash, role string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	List() ([]models.User, error)
	UpdateRole(id int, role string) error
	Delete(id int) error
	CountByRole(role string) (int, error)
}

type MachineRepo interface {
	Create(ctx context.Context, m models.Machine) (int, error)
	Get(ctx context.Context, id int) (*models.Machine, error)
	List(ctx context.Context) ([]models.Machine, error)
	Update(ctx context.Context, m models.Machine) error
	Delete(ctx context.Context, id int) error
	// ListWithMaintenance returns every machine with its maintenance history attached.
	ListWithMaintenance(ctx context.Context) ([]models.Machine, error)
}

type MaintenanceRepo interface {
	Create(ctx context.Context, r models.MaintenanceRecord) (int, error)
	Get(ctx context.Context, id int) (*models.MaintenanceRecord, error)
	List(ctx context.Context) ([]models.MaintenanceRecord, error)
	ListByMachine(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error)
	Update(ctx context.Context, r models.MaintenanceRecord) error
	Delete(ctx context.Context, id int) error
}

type ActivityRepo interface {
	Append(ctx context.Context, a models.Activity) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.Activity, error)
}

type Repository struct {
	Machines    MachineRepo
	Maintenance MaintenanceRepo
	Activity    ActivityRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Machines:    NewMachineSQLite(db),
		Maintenance: NewMaintenanceSQLite(db),
		Activity:    NewActivitySQLite(db),
		Auth:        NewUserRepository(db),
	}
}
