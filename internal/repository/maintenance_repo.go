package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vitta/internal/models"
)

type MaintenanceSQLite struct {
	db *sql.DB
}

func NewMaintenanceSQLite(db *sql.DB) *MaintenanceSQLite {
	return &MaintenanceSQLite{db: db}
}

var _ MaintenanceRepo = (*MaintenanceSQLite)(nil)

const (
	maintenanceColumns = `id, machine_id, type, description, performed_at, next_scheduled_date, technician, cost, created_at`

	insertMaintenanceSQL = `INSERT INTO maintenance (machine_id, type, description, performed_at, next_scheduled_date, technician, cost, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	selectMaintenanceByIDSQL      = `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE id = ?`
	selectMaintenanceByMachineSQL = `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE machine_id = ? ORDER BY id ASC`
	selectAllMaintenanceSQL       = `SELECT ` + maintenanceColumns + ` FROM maintenance ORDER BY machine_id ASC, id ASC`

	updateMaintenanceSQL = `UPDATE maintenance SET type = ?, description = ?, performed_at = ?, next_scheduled_date = ?, technician = ?, cost = ? WHERE id = ?`

	deleteMaintenanceSQL = `DELETE FROM maintenance WHERE id = ?`
)

func scanMaintenance(s scanner) (models.MaintenanceRecord, error) {
	var (
		rec       models.MaintenanceRecord
		performed sql.NullString
		next      sql.NullString
	)
	if err := s.Scan(
		&rec.ID,
		&rec.MachineID,
		&rec.Type,
		&rec.Description,
		&performed,
		&next,
		&rec.Technician,
		&rec.Cost,
		&rec.CreatedAt,
	); err != nil {
		return models.MaintenanceRecord{}, err
	}
	rec.PerformedAt = dateValue(performed)
	rec.NextScheduledDate = dateValue(next)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

// Create inserts a maintenance record and returns its ID.
func (r *MaintenanceSQLite) Create(ctx context.Context, rec models.MaintenanceRecord) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMaintenanceSQL,
		rec.MachineID,
		rec.Type,
		rec.Description,
		dateArg(rec.PerformedAt),
		dateArg(rec.NextScheduledDate),
		rec.Technician,
		rec.Cost,
		nowUTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert maintenance for machine %d: %w", rec.MachineID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for maintenance: %w", err)
	}
	return int(id), nil
}

// Get fetches a record by ID. Returns (nil, nil) if not found.
func (r *MaintenanceSQLite) Get(ctx context.Context, id int) (*models.MaintenanceRecord, error) {
	rec, err := scanMaintenance(r.db.QueryRowContext(ctx, selectMaintenanceByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select maintenance %d: %w", id, err)
	}
	return &rec, nil
}

func (r *MaintenanceSQLite) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return r.query(ctx, selectAllMaintenanceSQL)
}

func (r *MaintenanceSQLite) ListByMachine(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	return r.query(ctx, selectMaintenanceByMachineSQL, machineID)
}

func (r *MaintenanceSQLite) query(ctx context.Context, q string, args ...any) ([]models.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select maintenance: %w", err)
	}
	defer rows.Close()

	out := make([]models.MaintenanceRecord, 0, 32)
	for rows.Next() {
		rec, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the editable fields of a record. The machine link is fixed.
func (r *MaintenanceSQLite) Update(ctx context.Context, rec models.MaintenanceRecord) error {
	res, err := r.db.ExecContext(ctx, updateMaintenanceSQL,
		rec.Type,
		rec.Description,
		dateArg(rec.PerformedAt),
		dateArg(rec.NextScheduledDate),
		rec.Technician,
		rec.Cost,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update maintenance %d: %w", rec.ID, err)
	}
	return requireAffected(res)
}

func (r *MaintenanceSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteMaintenanceSQL, id)
	if err != nil {
		return fmt.Errorf("delete maintenance %d: %w", id, err)
	}
	return requireAffected(res)
}
