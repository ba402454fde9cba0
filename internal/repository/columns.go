package repository

import (
	"database/sql"
	"time"

	"vitta/internal/alerts"
)

const layoutDate = "2006-01-02"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// dateArg converts an optional calendar date into a YYYY-MM-DD argument.
func dateArg(d *time.Time) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Format(layoutDate)
}

// dateValue reads an optional calendar date column. Malformed values are
// treated as absent.
func dateValue(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	return alerts.ParseOptionalDate(s.String)
}

func intArg(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intValue(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

// nowUTC stamps created_at / updated_at.
var nowUTC = func() time.Time { return time.Now().UTC() }
