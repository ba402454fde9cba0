package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vitta/internal/models"
)

type MachineSQLite struct {
	db *sql.DB
}

func NewMachineSQLite(db *sql.DB) *MachineSQLite {
	return &MachineSQLite{db: db}
}

var _ MachineRepo = (*MachineSQLite)(nil)

const (
	machineColumns = `id, name, model, manufacturer, serial_number, location, acquisition_date, maintenance_interval_months, calibration_interval_months, status, created_at, updated_at`

	insertMachineSQL = `INSERT INTO machines (name, model, manufacturer, serial_number, location, acquisition_date, maintenance_interval_months, calibration_interval_months, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectMachineByIDSQL = `SELECT ` + machineColumns + ` FROM machines WHERE id = ?`
	selectMachinesSQL    = `SELECT ` + machineColumns + ` FROM machines ORDER BY id ASC`

	updateMachineSQL = `UPDATE machines SET name = ?, model = ?, manufacturer = ?, serial_number = ?, location = ?, acquisition_date = ?, maintenance_interval_months = ?, calibration_interval_months = ?, status = ?, updated_at = ? WHERE id = ?`

	deleteMachineSQL = `DELETE FROM machines WHERE id = ?`
)

func scanMachine(s scanner) (models.Machine, error) {
	var (
		m           models.Machine
		acquisition sql.NullString
		maintMonths sql.NullInt64
		calMonths   sql.NullInt64
	)
	if err := s.Scan(
		&m.ID,
		&m.Name,
		&m.Model,
		&m.Manufacturer,
		&m.SerialNumber,
		&m.Location,
		&acquisition,
		&maintMonths,
		&calMonths,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return models.Machine{}, err
	}
	m.AcquisitionDate = dateValue(acquisition)
	m.MaintenanceIntervalMonths = intValue(maintMonths)
	m.CalibrationIntervalMonths = intValue(calMonths)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

// Create inserts a machine and returns its ID.
func (r *MachineSQLite) Create(ctx context.Context, m models.Machine) (int, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, insertMachineSQL,
		m.Name,
		m.Model,
		m.Manufacturer,
		m.SerialNumber,
		m.Location,
		dateArg(m.AcquisitionDate),
		intArg(m.MaintenanceIntervalMonths),
		intArg(m.CalibrationIntervalMonths),
		m.Status,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert machine %q: %w", m.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for machine %q: %w", m.Name, err)
	}
	return int(id), nil
}

// Get fetches a machine by ID. Returns (nil, nil) if not found.
func (r *MachineSQLite) Get(ctx context.Context, id int) (*models.Machine, error) {
	m, err := scanMachine(r.db.QueryRowContext(ctx, selectMachineByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select machine %d: %w", id, err)
	}
	return &m, nil
}

// List returns all machines ordered by ID.
func (r *MachineSQLite) List(ctx context.Context) ([]models.Machine, error) {
	return listMachines(ctx, r.db)
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listMachines(ctx context.Context, q queryer) ([]models.Machine, error) {
	rows, err := q.QueryContext(ctx, selectMachinesSQL)
	if err != nil {
		return nil, fmt.Errorf("select machines: %w", err)
	}
	defer rows.Close()

	out := make([]models.Machine, 0, 32)
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the editable fields of a machine.
func (r *MachineSQLite) Update(ctx context.Context, m models.Machine) error {
	res, err := r.db.ExecContext(ctx, updateMachineSQL,
		m.Name,
		m.Model,
		m.Manufacturer,
		m.SerialNumber,
		m.Location,
		dateArg(m.AcquisitionDate),
		intArg(m.MaintenanceIntervalMonths),
		intArg(m.CalibrationIntervalMonths),
		m.Status,
		nowUTC(),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("update machine %d: %w", m.ID, err)
	}
	return requireAffected(res)
}

// Delete removes a machine; its maintenance records cascade.
func (r *MachineSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteMachineSQL, id)
	if err != nil {
		return fmt.Errorf("delete machine %d: %w", id, err)
	}
	return requireAffected(res)
}

// ListWithMaintenance loads all machines and all maintenance records inside
// one read-only transaction and attaches each record to its machine.
func (r *MachineSQLite) ListWithMaintenance(ctx context.Context) ([]models.Machine, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	machines, err := listMachines(ctx, tx)
	if err != nil {
		return nil, err
	}
	byMachine, err := maintenanceByMachine(ctx, tx, len(machines))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	for i := range machines {
		machines[i].Maintenance = byMachine[machines[i].ID]
	}
	return machines, nil
}

func maintenanceByMachine(ctx context.Context, q queryer, sizeHint int) (map[int][]models.MaintenanceRecord, error) {
	rows, err := q.QueryContext(ctx, selectAllMaintenanceSQL)
	if err != nil {
		return nil, fmt.Errorf("select maintenance: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]models.MaintenanceRecord, sizeHint)
	for rows.Next() {
		rec, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		out[rec.MachineID] = append(out[rec.MachineID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
