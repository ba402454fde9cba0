package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vitta/internal/models"
	"vitta/internal/repository"
)

var (
	errInvalidTimeRange    = errors.New("invalid time range: from must be <= to")
	errUnknownActivityType = errors.New("unknown activity type")
)

// ActivityLogService reads the audit trail that the write services append to.
type ActivityLogService struct {
	activityRepo repository.ActivityRepo
}

func NewActivityLogService(activityRepo repository.ActivityRepo) *ActivityLogService {
	return &ActivityLogService{activityRepo: activityRepo}
}

// normalized returns the filter with bounds in UTC and the type uppercased.
// Zero bounds stay zero.
func (f LogFilter) normalized() (LogFilter, error) {
	out := LogFilter{Type: strings.ToUpper(strings.TrimSpace(f.Type))}
	if !f.From.IsZero() {
		out.From = f.From.UTC()
	}
	if !f.To.IsZero() {
		out.To = f.To.UTC()
	}

	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, errInvalidTimeRange
	}
	if out.Type != "" && !models.ValidActivityType(out.Type) {
		return LogFilter{}, fmt.Errorf("%w %q", errUnknownActivityType, out.Type)
	}
	return out, nil
}

func (s *ActivityLogService) List(ctx context.Context, f LogFilter) ([]models.Activity, error) {
	nf, err := f.normalized()
	if err != nil {
		return nil, err
	}
	return s.activityRepo.List(ctx, nf.From, nf.To, nf.Type)
}

// IsInvalidFilter reports whether err came from a malformed LogFilter.
func IsInvalidFilter(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, errUnknownActivityType)
}

// record appends one audit entry for a write that already succeeded.
func record(ctx context.Context, repo repository.ActivityRepo, typ, description string, meta map[string]any) error {
	return repo.Append(ctx, models.Activity{
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
}
