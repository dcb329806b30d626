package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// ClientIP extracts the caller address for rate limiting and audit
// records. X-Forwarded-For wins (first hop), then X-Real-IP. Requests
// with neither report "unknown" and share one rate-limit bucket.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-Ip")); real != "" {
		return real
	}
	return "unknown"
}

// parseIntQuery returns the integer value of a query param or a default.
// Tolerant of missing and invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseListOptions reads the post list query params. Values are clamped
// later by Normalize; status is passed through for the service to vet.
func ParseListOptions(r *http.Request) model.ListPostsOptions {
	q := r.URL.Query()
	return model.ListPostsOptions{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", model.DefaultPageSize),
		Status:   model.PostStatus(strings.ToUpper(strings.TrimSpace(q.Get("status")))),
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
	}
}
