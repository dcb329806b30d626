package httpx

import (
	"context"
	"net/http"

	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// AuditReader lists recent entries from the audit trail.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]model.AuditRecord, error)
}

// AuditHandlers provides HTTP handlers for the admin audit trail.
type AuditHandlers struct {
	Repo AuditReader
}

// List handles the admin audit trail endpoint.
// GET /api/admin/audit?limit=<n>.
func (h *AuditHandlers) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.ListRecent(r.Context(), parseIntQuery(r, "limit", 0))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"records": records})
}
