//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "DRAFT"
	StatusPublished PostStatus = "PUBLISHED"
	StatusArchived  PostStatus = "ARCHIVED"
)

func (s PostStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

const (
	maxPostTitleLen   = 200
	maxPostExcerptLen = 500
	maxPostContentLen = 100_000
)

// AuthorRef is the compact author shape embedded in post payloads.
type AuthorRef struct {
	Name  string `json:"name"  db:"author_name"`
	Email string `json:"email" db:"author_email"`
}

// Post is a full article with body content, as served to readers and admins.
type Post struct {
	ID          string        `json:"id"                     db:"id"`
	Title       string        `json:"title"                  db:"title"`
	Slug        string        `json:"slug"                   db:"slug"`
	Excerpt     string        `json:"excerpt"                db:"excerpt"`
	Content     string        `json:"content"                db:"content"`
	CoverImage  *string       `json:"cover_image,omitempty"  db:"cover_image"`
	Status      PostStatus    `json:"status"                 db:"status"`
	AuthorID    string        `json:"author_id"              db:"author_id"`
	Author      AuthorRef     `json:"author"`
	Categories  []CategoryRef `json:"categories"`
	PublishedAt *time.Time    `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time     `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"             db:"updated_at"`
}

// Summary returns the post without its body content, for list endpoints.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Status:      p.Status,
		Author:      p.Author,
		Categories:  p.Categories,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PostSummary is the list-item shape: everything but the body.
type PostSummary struct {
	ID          string        `json:"id"                     db:"id"`
	Title       string        `json:"title"                  db:"title"`
	Slug        string        `json:"slug"                   db:"slug"`
	Excerpt     string        `json:"excerpt"                db:"excerpt"`
	CoverImage  *string       `json:"cover_image,omitempty"  db:"cover_image"`
	Status      PostStatus    `json:"status"                 db:"status"`
	Author      AuthorRef     `json:"author"`
	Categories  []CategoryRef `json:"categories"`
	PublishedAt *time.Time    `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time     `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"             db:"updated_at"`
}

// CreatePostRequest contains fields to create a post. Status defaults to DRAFT.
type CreatePostRequest struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	Status      PostStatus `json:"status,omitempty"`
	CategoryIDs []string   `json:"category_ids"`
}

func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxPostTitleLen {
		return errors.New("title cannot exceed 200 characters")
	}
	if strings.TrimSpace(r.Excerpt) == "" {
		return errors.New("excerpt is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Excerpt) > maxPostExcerptLen {
		return errors.New("excerpt cannot exceed 500 characters")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required and cannot be empty")
	}
	if len(r.Content) > maxPostContentLen {
		return errors.New("content exceeds maximum length")
	}
	if r.Status == "" {
		r.Status = StatusDraft
	}
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if len(r.CategoryIDs) == 0 {
		return errors.New("at least one category is required")
	}
	return nil
}

// UpdatePostRequest contains optional fields to update on a post.
// Nil fields are left untouched. Changing the title does not change the slug.
type UpdatePostRequest struct {
	Title       *string     `json:"title,omitempty"`
	Excerpt     *string     `json:"excerpt,omitempty"`
	Content     *string     `json:"content,omitempty"`
	CoverImage  *string     `json:"cover_image,omitempty"`
	Status      *PostStatus `json:"status,omitempty"`
	CategoryIDs []string    `json:"category_ids,omitempty"`
}

func (r *UpdatePostRequest) Validate() error {
	if r.Title == nil && r.Excerpt == nil && r.Content == nil &&
		r.CoverImage == nil && r.Status == nil && r.CategoryIDs == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(*r.Title) > maxPostTitleLen {
			return errors.New("title cannot exceed 200 characters")
		}
	}
	if r.Excerpt != nil {
		if strings.TrimSpace(*r.Excerpt) == "" {
			return errors.New("excerpt cannot be empty")
		}
		if utf8.RuneCountInString(*r.Excerpt) > maxPostExcerptLen {
			return errors.New("excerpt cannot exceed 500 characters")
		}
	}
	if r.Content != nil {
		if strings.TrimSpace(*r.Content) == "" {
			return errors.New("content cannot be empty")
		}
		if len(*r.Content) > maxPostContentLen {
			return errors.New("content exceeds maximum length")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", *r.Status)
	}
	if r.CategoryIDs != nil && len(r.CategoryIDs) == 0 {
		return errors.New("at least one category is required")
	}
	return nil
}

// ListPostsOptions are the filters accepted by post list queries.
// Status and Category are exact matches; Search is a case-insensitive
// substring match against title and excerpt.
type ListPostsOptions struct {
	Page     int
	PageSize int
	Status   PostStatus
	Category string // category slug
	Search   string
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Normalize clamps paging values into their valid ranges.
func (o *ListPostsOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
}

// Offset returns the SQL offset for the current page.
func (o *ListPostsOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// Pagination is the paging envelope returned alongside post lists.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	TotalPosts int  `json:"totalPosts"`
	HasMore    bool `json:"hasMore"`
}

// NewPagination derives the envelope from a total row count and paging options.
func NewPagination(total int, opts ListPostsOptions) Pagination {
	totalPages := (total + opts.PageSize - 1) / opts.PageSize
	return Pagination{
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
		TotalPosts: total,
		HasMore:    opts.Page < totalPages,
	}
}

// PostPage is the full list response payload.
type PostPage struct {
	Posts      []PostSummary `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}
