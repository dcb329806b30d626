package data_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataetica/dataetica-api/internal/data"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	"github.com/dataetica/dataetica-api/internal/testutil"
)

func TestAuditRepoRecordAndList(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewAuditRepo(db)
		ctx := context.Background()

		require.NoError(t, repo.Record(ctx, model.AuditRecord{
			Action:     model.AuditLogin,
			ActorID:    "u-1",
			ActorEmail: "admin@dataetica.example",
			ClientIP:   "203.0.113.7",
			Detail:     json.RawMessage(`{"method":"password"}`),
		}))
		require.NoError(t, repo.Record(ctx, model.AuditRecord{
			Action:   model.AuditLoginFailed,
			ActorID:  "anonymous",
			ClientIP: "203.0.113.8",
		}))

		records, err := repo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 2)

		// Newest first.
		assert.Equal(t, model.AuditLoginFailed, records[0].Action)
		assert.Equal(t, model.AuditLogin, records[1].Action)
		assert.JSONEq(t, `{"method":"password"}`, string(records[1].Detail))
		assert.False(t, records[0].CreatedAt.IsZero())
	})
}

func TestAuditRepoListLimit(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewAuditRepo(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Record(ctx, model.AuditRecord{
				Action:   model.AuditPostCreate,
				ActorID:  "u-1",
				ClientIP: "203.0.113.7",
			}))
		}

		records, err := repo.ListRecent(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}
