package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dataetica/dataetica-api/internal/data/pgxutil"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// CategoryRepo provides database operations for categories.
type CategoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCategoryRepo creates a CategoryRepo with the real time provider.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewCategoryRepoWithTimeProvider creates a CategoryRepo with a custom time provider.
func NewCategoryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CategoryRepo {
	return &CategoryRepo{DB: db, timeProvider: tp}
}

const categorySelect = `
	SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
	       count(pc.post_id)::int AS post_count
	FROM categories c
	LEFT JOIN post_categories pc ON pc.category_id = c.id`

const categoryGroupBy = ` GROUP BY c.id, c.name, c.slug, c.description, c.created_at, c.updated_at`

// Create inserts a category. The slug must be generated by the caller.
func (r *CategoryRepo) Create(ctx context.Context, name, slug string, description *string) (model.Category, error) {
	var id string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO categories (name, slug, description)
			VALUES ($1, $2, $3)
			RETURNING id`,
			strings.TrimSpace(name), slug, description,
		).Scan(&id)
	})
	if err != nil {
		return model.Category{}, apperrors.MapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a category by ID with its post count.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (model.Category, error) {
	return r.getBy(ctx, categorySelect+` WHERE c.id = $1`+categoryGroupBy, id)
}

// GetBySlug retrieves a category by slug with its post count.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (model.Category, error) {
	return r.getBy(ctx, categorySelect+` WHERE c.slug = $1`+categoryGroupBy, slug)
}

// List retrieves all categories ordered by name, each with its post count.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, categorySelect+categoryGroupBy+` ORDER BY c.name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Update applies the given changes and returns the stored category.
func (r *CategoryRepo) Update(ctx context.Context, id string, name, slug, description *string) (model.Category, error) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*name))
	}
	if slug != nil {
		setParts = append(setParts, fmt.Sprintf("slug = $%d", nextIdx()))
		args = append(args, *slug)
	}
	if description != nil {
		if strings.TrimSpace(*description) == "" {
			setParts = append(setParts, "description = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
			args = append(args, *description)
		}
	}
	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	args = append(args, id)

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		query := fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d",
			strings.Join(setParts, ", "), len(args))
		ct, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return model.Category{}, apperrors.MapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category. Categories still linked to posts are kept;
// the restrict constraint on post_categories surfaces as a foreign key
// error.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return affected > 0, nil
}

// SlugExists reports whether any category already uses the given slug.
func (r *CategoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`, slug,
		).Scan(&exists)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return exists, nil
}

func (r *CategoryRepo) getBy(ctx context.Context, query string, args ...any) (model.Category, error) {
	var cat model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		cat, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		return model.Category{}, apperrors.MapDBError(err)
	}
	return cat, nil
}
