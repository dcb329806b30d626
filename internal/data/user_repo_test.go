package data_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataetica/dataetica-api/internal/data"
	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/testutil"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewUserRepo(db)
		ctx := context.Background()

		created, err := repo.Create(ctx, model.User{
			Email:        "Editora@DataEtica.Example",
			Name:         "Editora",
			PasswordHash: "hash",
			Role:         domainauth.RoleUser,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		// Emails are stored lowercased.
		assert.Equal(t, "editora@dataetica.example", created.Email)

		byID, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, byID.Email)
	})
}

func TestUserRepoGetByEmailCaseInsensitive(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewUserRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, model.User{
			Email:        "admin@dataetica.example",
			Name:         "Admin",
			PasswordHash: "hash",
			Role:         domainauth.RoleAdmin,
		})
		require.NoError(t, err)

		got, err := repo.GetByEmail(ctx, "ADMIN@dataetica.example")
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, got.Role)
	})
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewUserRepo(db)
		ctx := context.Background()

		user := model.User{
			Email:        "admin@dataetica.example",
			Name:         "Admin",
			PasswordHash: "hash",
			Role:         domainauth.RoleAdmin,
		}
		_, err := repo.Create(ctx, user)
		require.NoError(t, err)

		_, err = repo.Create(ctx, user)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestUserRepoMissing(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewUserRepo(db)
		_, err := repo.GetByEmail(context.Background(), "nadie@dataetica.example")
		assert.True(t, apperrors.IsNotFound(err))
	})
}
