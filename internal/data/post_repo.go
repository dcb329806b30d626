package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dataetica/dataetica-api/internal/data/pgxutil"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// PostRepo provides database operations for posts and their category links.
type PostRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPostRepo creates a PostRepo with the real time provider.
func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewPostRepoWithTimeProvider creates a PostRepo with a custom time provider.
func NewPostRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PostRepo {
	return &PostRepo{DB: db, timeProvider: tp}
}

// postRow is the flat scan target for post queries joined to the author.
type postRow struct {
	ID          string           `db:"id"`
	Title       string           `db:"title"`
	Slug        string           `db:"slug"`
	Excerpt     string           `db:"excerpt"`
	Content     string           `db:"content"`
	CoverImage  *string          `db:"cover_image"`
	Status      model.PostStatus `db:"status"`
	AuthorID    string           `db:"author_id"`
	AuthorName  string           `db:"author_name"`
	AuthorEmail string           `db:"author_email"`
	PublishedAt *time.Time       `db:"published_at"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

func (row postRow) toPost(categories []model.CategoryRef) model.Post {
	return model.Post{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		CoverImage:  row.CoverImage,
		Status:      row.Status,
		AuthorID:    row.AuthorID,
		Author:      model.AuthorRef{Name: row.AuthorName, Email: row.AuthorEmail},
		Categories:  categories,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

const postSelect = `
	SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.cover_image, p.status,
	       p.author_id, u.name AS author_name, u.email AS author_email,
	       p.published_at, p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// CreateParams carries the fully prepared values for a post insert. The
// slug is generated by the service layer before the insert.
type CreateParams struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	CoverImage  *string
	Status      model.PostStatus
	AuthorID    string
	PublishedAt *time.Time
	CategoryIDs []string
}

// Create inserts a post and its category links in one transaction and
// returns the stored post.
func (r *PostRepo) Create(ctx context.Context, p CreateParams) (model.Post, error) {
	var id string
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO posts (title, slug, excerpt, content, cover_image, status, author_id, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			strings.TrimSpace(p.Title), p.Slug, strings.TrimSpace(p.Excerpt),
			p.Content, p.CoverImage, p.Status, p.AuthorID, p.PublishedAt,
		).Scan(&id)
		if err != nil {
			return err
		}
		return linkCategories(ctx, tx, id, p.CategoryIDs)
	})
	if err != nil {
		return model.Post{}, apperrors.MapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// UpdateParams carries the optional column updates for a post. Nil fields
// are left unchanged; CategoryIDs non-nil replaces all category links.
type UpdateParams struct {
	Title       *string
	Excerpt     *string
	Content     *string
	CoverImage  *string
	Status      *model.PostStatus
	PublishedAt *time.Time
	CategoryIDs []string
}

// Update applies the given changes and returns the stored post.
func (r *PostRepo) Update(ctx context.Context, id string, p UpdateParams) (model.Post, error) {
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		setClause, args := r.buildUpdateClause(p)
		if setClause != "" {
			args = append(args, id)
			query := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", setClause, len(args))
			ct, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return err
			}
			if ct.RowsAffected() == 0 {
				return pgx.ErrNoRows
			}
		}
		if p.CategoryIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
				return err
			}
			return linkCategories(ctx, tx, id, p.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return model.Post{}, apperrors.MapDBError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostRepo) buildUpdateClause(p UpdateParams) (string, []any) {
	setParts := make([]string, 0, 7)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if p.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*p.Title))
	}
	if p.Excerpt != nil {
		setParts = append(setParts, fmt.Sprintf("excerpt = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*p.Excerpt))
	}
	if p.Content != nil {
		setParts = append(setParts, fmt.Sprintf("content = $%d", nextIdx()))
		args = append(args, *p.Content)
	}
	if p.CoverImage != nil {
		if strings.TrimSpace(*p.CoverImage) == "" {
			setParts = append(setParts, "cover_image = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("cover_image = $%d", nextIdx()))
			args = append(args, *p.CoverImage)
		}
	}
	if p.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *p.Status)
	}
	if p.PublishedAt != nil {
		setParts = append(setParts, fmt.Sprintf("published_at = $%d", nextIdx()))
		args = append(args, *p.PublishedAt)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// GetByID retrieves a post by ID with its author and categories.
func (r *PostRepo) GetByID(ctx context.Context, id string) (model.Post, error) {
	return r.getBy(ctx, postSelect+` WHERE p.id = $1`, id)
}

// GetBySlug retrieves a post by slug with its author and categories.
func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (model.Post, error) {
	return r.getBy(ctx, postSelect+` WHERE p.slug = $1`, slug)
}

func (r *PostRepo) getBy(ctx context.Context, query string, args ...any) (model.Post, error) {
	var out model.Post
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[postRow])
		if err != nil {
			return err
		}
		cats, err := categoriesForPosts(ctx, conn, []string{row.ID})
		if err != nil {
			return err
		}
		out = row.toPost(cats[row.ID])
		return nil
	})
	if err != nil {
		return model.Post{}, apperrors.MapDBError(err)
	}
	return out, nil
}

// List retrieves a page of posts matching the options, together with the
// paging envelope. Results order by publication time, newest first, with
// unpublished posts sorted by creation time.
func (r *PostRepo) List(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error) {
	opts.Normalize()
	where, args := buildPostFilters(opts)

	var page model.PostPage
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var total int
		countQuery := `SELECT count(*) FROM posts p` + where
		if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return err
		}

		listArgs := append(args, opts.PageSize, opts.Offset())
		listQuery := fmt.Sprintf(
			postSelect+where+`
			ORDER BY COALESCE(p.published_at, p.created_at) DESC
			LIMIT $%d OFFSET $%d`,
			len(listArgs)-1, len(listArgs),
		)
		rows, err := conn.Query(ctx, listQuery, listArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err := pgx.CollectRows(rows, pgx.RowToStructByName[postRow])
		if err != nil {
			return err
		}

		ids := make([]string, len(rowsOut))
		for i, row := range rowsOut {
			ids[i] = row.ID
		}
		cats, err := categoriesForPosts(ctx, conn, ids)
		if err != nil {
			return err
		}

		posts := make([]model.PostSummary, len(rowsOut))
		for i, row := range rowsOut {
			full := row.toPost(cats[row.ID])
			posts[i] = full.Summary()
		}
		page = model.PostPage{
			Posts:      posts,
			Pagination: model.NewPagination(total, opts),
		}
		return nil
	})
	if err != nil {
		return model.PostPage{}, apperrors.MapDBError(err)
	}
	return page, nil
}

// buildPostFilters returns the WHERE clause (with leading space) and its
// arguments for the given list options.
func buildPostFilters(opts model.ListPostsOptions) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if opts.Status != "" {
		conds = append(conds, fmt.Sprintf("p.status = $%d", nextIdx()))
		args = append(args, opts.Status)
	}
	if s := strings.TrimSpace(opts.Category); s != "" {
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.post_id = p.id AND c.slug = $%d)`, nextIdx()))
		args = append(args, s)
	}
	if s := strings.TrimSpace(opts.Search); s != "" {
		idx := nextIdx()
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.excerpt ILIKE $%d)", idx, idx))
		args = append(args, "%"+s+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Delete removes a post. Category links go with it via ON DELETE CASCADE.
func (r *PostRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
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

// SlugExists reports whether any post already uses the given slug.
func (r *PostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1)`, slug,
		).Scan(&exists)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return exists, nil
}

func linkCategories(ctx context.Context, tx pgx.Tx, postID string, categoryIDs []string) error {
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO post_categories (post_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, postID, catID); err != nil {
			return err
		}
	}
	return nil
}

type postCategoryRow struct {
	PostID string `db:"post_id"`
	Name   string `db:"name"`
	Slug   string `db:"slug"`
}

func categoriesForPosts(ctx context.Context, conn *pgx.Conn, postIDs []string) (map[string][]model.CategoryRef, error) {
	out := make(map[string][]model.CategoryRef, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	rows, err := conn.Query(ctx, `
		SELECT pc.post_id, c.name, c.slug
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	links, err := pgx.CollectRows(rows, pgx.RowToStructByName[postCategoryRow])
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.PostID] = append(out[l.PostID], model.CategoryRef{Name: l.Name, Slug: l.Slug})
	}
	return out, nil
}
