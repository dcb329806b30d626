package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/dataetica/dataetica-api/internal/data/pgxutil"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// AuditRepo persists the admin action audit trail.
type AuditRepo struct {
	DB *sql.DB
}

// NewAuditRepo creates an AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db}
}

// Record inserts one audit entry.
func (r *AuditRepo) Record(ctx context.Context, rec model.AuditRecord) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO audit_log (action, actor_id, actor_email, client_ip, detail)
			VALUES ($1, $2, $3, $4, $5)`,
			rec.Action, rec.ActorID, rec.ActorEmail, rec.ClientIP, rec.Detail,
		)
		return err
	})
	return apperrors.MapDBError(err)
}

// ListRecent returns the most recent audit entries, newest first.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []model.AuditRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, action, actor_id, actor_email, client_ip, detail, created_at
			FROM audit_log
			ORDER BY created_at DESC
			LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.AuditRecord])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
