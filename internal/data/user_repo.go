// Package data provides PostgreSQL-backed repositories. Queries run on
// native pgx connections bridged from the shared database/sql pool.
package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dataetica/dataetica-api/internal/data/pgxutil"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

// UserRepo provides database operations for user accounts.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email. Lookup is case-insensitive.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getBy(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	)
}

// Create inserts a user. The password must already be hashed.
func (r *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (email, name, password_hash, role)
			VALUES ($1, $2, $3, $4)
			RETURNING `+userColumns,
			strings.ToLower(strings.TrimSpace(user.Email)),
			strings.TrimSpace(user.Name),
			user.PasswordHash,
			user.Role,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return model.User{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *UserRepo) getBy(ctx context.Context, query string, args ...any) (model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return model.User{}, apperrors.MapDBError(err)
	}
	return user, nil
}
