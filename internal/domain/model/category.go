//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxCategoryNameLen        = 100
	maxCategoryDescriptionLen = 500
)

// Category groups posts by theme. Slug is unique and derived from the name.
type Category struct {
	ID          string    `json:"id"                    db:"id"`
	Name        string    `json:"name"                  db:"name"`
	Slug        string    `json:"slug"                  db:"slug"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`

	// PostCount is populated by list queries; not a stored column.
	PostCount int `json:"post_count" db:"post_count"`
}

// CategoryRef is the compact shape embedded in post payloads.
type CategoryRef struct {
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

func validateCategoryName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxCategoryNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	return nil
}

func validateCategoryDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxCategoryDescriptionLen {
		return errors.New("description cannot exceed 500 characters")
	}
	return nil
}

// CreateCategoryRequest contains fields to create a new category.
// The slug is always derived server-side from the name.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateCategoryRequest) Validate() error {
	if err := validateCategoryName(r.Name); err != nil {
		return err
	}
	if r.Description != nil {
		return validateCategoryDescription(*r.Description)
	}
	return nil
}

// UpdateCategoryRequest contains optional fields to update on a category.
// Renaming regenerates the slug.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateCategoryRequest) Validate() error {
	if r.Name == nil && r.Description == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateCategoryName(*r.Name); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := validateCategoryDescription(*r.Description); err != nil {
			return err
		}
	}
	return nil
}
