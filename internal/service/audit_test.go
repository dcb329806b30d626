package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// chanSink collects audit records on a channel so tests can wait for the
// detached write goroutine.
type chanSink struct {
	records chan model.AuditRecord
}

func (s *chanSink) Record(_ context.Context, rec model.AuditRecord) error {
	s.records <- rec
	return nil
}

func waitForRecord(t *testing.T, sink *chanSink) model.AuditRecord {
	t.Helper()
	select {
	case rec := <-sink.records:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit record")
		return model.AuditRecord{}
	}
}

func TestAuditService_Log(t *testing.T) {
	t.Parallel()
	sink := &chanSink{records: make(chan model.AuditRecord, 1)}
	svc := NewAuditService(sink, nil)

	svc.Log(model.AuditPostCreate, testActor, "1.2.3.4", map[string]string{"post_id": "p-1"})

	rec := waitForRecord(t, sink)
	assert.Equal(t, model.AuditPostCreate, rec.Action)
	assert.Equal(t, testActor.ID, rec.ActorID)
	assert.Equal(t, testActor.Email, rec.ActorEmail)
	assert.Equal(t, "1.2.3.4", rec.ClientIP)

	var detail map[string]string
	require.NoError(t, json.Unmarshal(rec.Detail, &detail))
	assert.Equal(t, "p-1", detail["post_id"])
}

func TestAuditService_LogAnonymous(t *testing.T) {
	t.Parallel()
	sink := &chanSink{records: make(chan model.AuditRecord, 1)}
	svc := NewAuditService(sink, nil)

	svc.LogAnonymous(model.AuditLoginFailed, "ghost@dataetica.example", "5.6.7.8", nil)

	rec := waitForRecord(t, sink)
	assert.Equal(t, model.AuditLoginFailed, rec.Action)
	assert.Equal(t, "anonymous", rec.ActorID)
	assert.Equal(t, "ghost@dataetica.example", rec.ActorEmail)
	assert.Nil(t, rec.Detail)
}
