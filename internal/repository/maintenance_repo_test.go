package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"vitta/internal/models"
	"vitta/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMaintenanceSQLite_Create(t *testing.T) {
	tests := []struct {
		name    string
		rec     models.MaintenanceRecord
		expect  func(sqlmock.Sqlmock)
		wantID  int
		wantErr bool
	}{
		{
			name: "with dates",
			rec: models.MaintenanceRecord{
				MachineID:         1,
				Type:              models.MaintenancePreventive,
				PerformedAt:       day(2025, time.March, 2),
				NextScheduledDate: day(2025, time.June, 2),
				Technician:        "Ana",
				Cost:              99.5,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance")).
					WithArgs(1, "Preventiva", "", "2025-03-02", "2025-06-02", "Ana", 99.5, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			wantID: 5,
		},
		{
			name: "without dates",
			rec:  models.MaintenanceRecord{MachineID: 2, Type: models.MaintenanceCorrective},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance")).
					WithArgs(2, "Corretiva", "", nil, nil, "", 0.0, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(6, 1))
			},
			wantID: 6,
		},
		{
			name: "foreign key violation",
			rec:  models.MaintenanceRecord{MachineID: 404, Type: models.MaintenanceCalibration},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance")).
					WillReturnError(errors.New("FOREIGN KEY constraint failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New(): %v", err)
			}
			defer db.Close()

			tt.expect(mock)
			id, err := repository.NewMaintenanceSQLite(db).Create(context.Background(), tt.rec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || id != tt.wantID {
				t.Fatalf("Create() = %d, %v; want %d", id, err, tt.wantID)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestMaintenanceSQLite_ListByMachine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance WHERE machine_id = ? ORDER BY id ASC")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(maintenanceCols).
			AddRow(1, 3, "Calibração", "annual", nil, "2026-01-15", "Bruno", 0.0, now))

	got, err := repository.NewMaintenanceSQLite(db).ListByMachine(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByMachine() error = %v", err)
	}
	if len(got) != 1 || got[0].Type != "Calibração" || got[0].PerformedAt != nil {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].NextScheduledDate == nil || got[0].NextScheduledDate.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("next scheduled date = %v", got[0].NextScheduledDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMaintenanceSQLite_GetUpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewMaintenanceSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance WHERE id = ?")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows(maintenanceCols))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance SET")).
		WithArgs("Preventiva", "", nil, "2025-12-01", "", 0.0, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance")).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if rec, err := repo.Get(context.Background(), 8); err != nil || rec != nil {
		t.Fatalf("Get(8) = %+v, %v; want nil, nil", rec, err)
	}
	err = repo.Update(context.Background(), models.MaintenanceRecord{
		ID:                9,
		Type:              "Preventiva",
		NextScheduledDate: day(2025, time.December, 1),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := repo.Delete(context.Background(), 10); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Delete() = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
