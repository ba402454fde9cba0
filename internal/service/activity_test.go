package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitta/internal/models"
)

// fakeActivityRepo records List arguments and appended entries.
type fakeActivityRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	gotType string

	events    []models.Activity
	err       error
	appendErr error

	calls    int
	appended []models.Activity
}

func (f *fakeActivityRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.Activity, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.err
}

func (f *fakeActivityRepo) Append(ctx context.Context, a models.Activity) error {
	f.appended = append(f.appended, a)
	return f.appendErr
}

func (f *fakeActivityRepo) types() []string {
	out := make([]string, 0, len(f.appended))
	for _, a := range f.appended {
		out = append(out, a.Type)
	}
	return out
}

func TestActivityLogService_List(t *testing.T) {
	t.Parallel()

	plus5 := time.FixedZone("UTC+5", 5*3600)
	minus2 := time.FixedZone("UTC-2", -2*3600)

	tests := []struct {
		name      string
		in        LogFilter
		wantFrom  time.Time
		wantTo    time.Time
		wantType  string
		wantCalls int
		invalid   bool
	}{
		{
			name:      "zero filter passes through",
			in:        LogFilter{},
			wantCalls: 1,
		},
		{
			name: "bounds converted to UTC and type normalized",
			in: LogFilter{
				From: time.Date(2025, time.October, 1, 10, 0, 0, 0, plus5),
				To:   time.Date(2025, time.October, 1, 12, 30, 0, 0, minus2),
				Type: "  maintenance_deleted ",
			},
			wantFrom:  time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC),
			wantTo:    time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC),
			wantType:  models.ActivityMaintenanceDeleted,
			wantCalls: 1,
		},
		{
			name: "equal bounds are allowed",
			in: LogFilter{
				From: time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			},
			wantFrom:  time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			wantTo:    time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			wantCalls: 1,
		},
		{
			name: "reversed range",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			invalid: true,
		},
		{
			name:    "unknown type",
			in:      LogFilter{Type: "machine_exploded"},
			invalid: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeActivityRepo{events: []models.Activity{{EventID: "1"}}}

			out, err := NewActivityLogService(repo).List(context.Background(), tc.in)
			if tc.invalid {
				if !IsInvalidFilter(err) {
					t.Fatalf("expected invalid filter error, got %v", err)
				}
				if repo.calls != 0 {
					t.Fatalf("repo called %d times for an invalid filter", repo.calls)
				}
				return
			}
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(out) != 1 || repo.calls != tc.wantCalls {
				t.Fatalf("out=%+v calls=%d", out, repo.calls)
			}
			if !repo.gotFrom.Equal(tc.wantFrom) || !repo.gotTo.Equal(tc.wantTo) {
				t.Fatalf("bounds = [%v, %v], want [%v, %v]", repo.gotFrom, repo.gotTo, tc.wantFrom, tc.wantTo)
			}
			if !tc.wantFrom.IsZero() && repo.gotFrom.Location() != time.UTC {
				t.Fatalf("from not in UTC: %v", repo.gotFrom.Location())
			}
			if repo.gotType != tc.wantType {
				t.Fatalf("type = %q, want %q", repo.gotType, tc.wantType)
			}
		})
	}
}

func TestActivityLogService_List_RepoError(t *testing.T) {
	t.Parallel()

	repo := &fakeActivityRepo{err: errors.New("db down")}
	_, err := NewActivityLogService(repo).List(context.Background(), LogFilter{})
	if !errors.Is(err, repo.err) || IsInvalidFilter(err) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}

func TestRecord_AppendsEntry(t *testing.T) {
	repo := &fakeActivityRepo{}
	meta := map[string]any{"machine_id": 3}
	if err := record(context.Background(), repo, models.ActivityMachineDeleted, "deleted", meta); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.appended) != 1 || repo.appended[0].Type != models.ActivityMachineDeleted || repo.appended[0].Description != "deleted" {
		t.Fatalf("appended = %+v", repo.appended)
	}
}
