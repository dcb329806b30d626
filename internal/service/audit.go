package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	"github.com/dataetica/dataetica-api/internal/ports"
)

const auditWriteTimeout = 5 * time.Second

// AuditService records admin actions without blocking the request path.
// Writes happen on a detached goroutine; failures are logged and dropped.
type AuditService struct {
	sink   ports.AuditSink
	logger *slog.Logger
}

// NewAuditService constructs an AuditService.
func NewAuditService(sink ports.AuditSink, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{sink: sink, logger: logger.With("component", "audit")}
}

// Log records an action by an authenticated actor. Detail is marshaled
// to JSON; a nil detail records no payload. Returns immediately.
func (s *AuditService) Log(action string, actor domainauth.AuthenticatedUser, clientIP string, detail any) {
	s.log(action, actor.ID, actor.Email, clientIP, detail)
}

// LogAnonymous records an action with no authenticated actor, such as a
// failed login attempt.
func (s *AuditService) LogAnonymous(action, subject, clientIP string, detail any) {
	s.log(action, "anonymous", subject, clientIP, detail)
}

func (s *AuditService) log(action, actorID, actorEmail, clientIP string, detail any) {
	var raw json.RawMessage
	if detail != nil {
		b, err := json.Marshal(detail)
		if err != nil {
			s.logger.Error("marshal audit detail", "action", action, "err", err)
		} else {
			raw = b
		}
	}
	rec := model.AuditRecord{
		Action:     action,
		ActorID:    actorID,
		ActorEmail: actorEmail,
		ClientIP:   clientIP,
		Detail:     raw,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := s.sink.Record(ctx, rec); err != nil {
			s.logger.Error("record audit entry", "action", action, "actor", actorEmail, "err", err)
		}
	}()
}
