package service

import (
	"context"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/logger"
	"vitta/internal/models"
	"vitta/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (TokenClaims, error)
	// CurrentRole returns the stored role so revoked or demoted tokens lose access.
	CurrentRole(userID int) (string, error)
	// EnsureAdmin creates or promotes the bootstrap admin when no admin exists.
	EnsureAdmin(username, password string) (bool, error)
}

// Users is the admin-only user management surface.
type Users interface {
	ListUsers() ([]models.User, error)
	SetRole(ctx context.Context, id int, role string) error
	DeleteUser(ctx context.Context, id int) error
}

// Machines is CRUD over equipment.
type Machines interface {
	Create(ctx context.Context, in MachineInput) (models.Machine, error)
	Get(ctx context.Context, id int) (models.Machine, error)
	List(ctx context.Context) ([]models.Machine, error)
	Update(ctx context.Context, id int, in MachineInput) (models.Machine, error)
	Delete(ctx context.Context, id int) error
}

// Maintenance is CRUD over maintenance records.
type Maintenance interface {
	Create(ctx context.Context, in MaintenanceInput) (models.MaintenanceRecord, error)
	Get(ctx context.Context, id int) (models.MaintenanceRecord, error)
	List(ctx context.Context) ([]models.MaintenanceRecord, error)
	ListByMachine(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error)
	Update(ctx context.Context, id int, in MaintenanceInput) (models.MaintenanceRecord, error)
	Delete(ctx context.Context, id int) error
}

// Alerts exposes the derived, never-persisted alert view.
type Alerts interface {
	List(ctx context.Context) ([]alerts.Alert, error)
	Summary(ctx context.Context) (alerts.Summary, error)
}

// ActivityLog exposes the append-only audit trail with filtering.
type ActivityLog interface {
	List(ctx context.Context, f LogFilter) ([]models.Activity, error)
}

// Monitor periodically recomputes alerts in the background.
// Stop via context cancellation in main() for graceful shutdown.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
	Machines
	Maintenance
	Alerts
	ActivityLog
	Monitor
}

// Options carries settings that are not repositories.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	// Now supplies the current time; "today" for alerts is derived from it.
	Now func() time.Time
	Log *logger.Logger
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	alertSvc := NewAlertService(repos.Machines, opts.Now)
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Users:         NewUserService(repos.Auth, repos.Activity),
		Machines:      NewMachineService(repos.Machines, repos.Activity),
		Maintenance:   NewMaintenanceService(repos.Maintenance, repos.Machines, repos.Activity),
		Alerts:        alertSvc,
		ActivityLog:   NewActivityLogService(repos.Activity),
		Monitor:       NewAlertMonitor(alertSvc, opts.Log.Named("alert_monitor")),
	}
}
