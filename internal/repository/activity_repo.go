package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"vitta/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

const (
	insertActivitySQL = `INSERT INTO activity (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`
	selectActivitySQL = `SELECT id, occurred_at, type, message, meta FROM activity`
)

// Append inserts a new entry. Empty EventID and zero OccurredAt are filled in.
func (r *ActivitySQLite) Append(ctx context.Context, a models.Activity) error {
	if a.EventID == "" {
		a.EventID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = nowUTC()
	} else {
		a.OccurredAt = a.OccurredAt.UTC()
	}

	var metaPtr *string
	if a.Metadata != nil {
		if b, err := json.Marshal(a.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.EventID,
		a.OccurredAt.Format("2006-01-02 15:04:05"),
		strings.ToUpper(strings.TrimSpace(a.Type)),
		a.Description,
		metaPtr,
	)
	return err
}

// List returns entries filtered by [from, to] (inclusive) and/or type, oldest first.
func (r *ActivitySQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.Activity, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectActivitySQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Activity, 0, 64)
	for rows.Next() {
		var a models.Activity
		var metaStr sql.NullString
		if err := rows.Scan(&a.EventID, &a.OccurredAt, &a.Type, &a.Description, &metaStr); err != nil {
			return nil, err
		}
		a.OccurredAt = a.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				a.Metadata = v
			} else {
				a.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
