package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/ratelimit"
	"github.com/dataetica/dataetica-api/internal/service"
)

// RateLimitPolicies groups the fixed-window policies applied per route group.
type RateLimitPolicies struct {
	// Login guards credential attempts.
	Login ratelimit.Policy
	// Content guards admin write operations.
	Content ratelimit.Policy
	// Default guards everything else under /api.
	Default ratelimit.Policy
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Posts      *service.PostService
	Categories *service.CategoryService
	Audit      AuditReader

	Limiter  *ratelimit.Limiter
	Policies RateLimitPolicies

	// Health probes; either may be nil.
	DB    Pinger
	Cache Pinger

	CookieSecure bool
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieSecure: services.CookieSecure,
		Logger:       services.Logger,
	}
	postHandlers := &PostHandlers{Svc: services.Posts, Logger: services.Logger}
	categoryHandlers := &CategoryHandlers{Svc: services.Categories, Logger: services.Logger}
	healthHandlers := &HealthHandlers{DB: services.DB, Cache: services.Cache}

	cfg := routeConfig{
		Verify:   services.Auth.Verify,
		Limiter:  services.Limiter,
		Policies: services.Policies,
	}

	registerAuthRoutes(mux, authHandlers, cfg)
	registerPublicRoutes(mux, postHandlers, categoryHandlers, cfg)
	registerAdminPostRoutes(mux, postHandlers, cfg)
	registerAdminCategoryRoutes(mux, categoryHandlers, cfg)
	if services.Audit != nil {
		auditHandlers := &AuditHandlers{Repo: services.Audit}
		mux.Handle("GET /api/admin/audit", cfg.adminWrap()(http.HandlerFunc(auditHandlers.List)))
	}
	mux.HandleFunc("GET /healthz", healthHandlers.Health)
	mux.HandleFunc("HEAD /healthz", healthHandlers.Health)

	return mux
}

// routeConfig holds the auth verifier and rate limiting shared by route groups.
type routeConfig struct {
	Verify   VerifyFunc
	Limiter  *ratelimit.Limiter
	Policies RateLimitPolicies
}

// limit returns a no-op wrapper when no limiter is configured.
func (cfg routeConfig) limit(scope string, policy ratelimit.Policy) func(http.Handler) http.Handler {
	if cfg.Limiter == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RateLimit(cfg.Limiter, scope, policy)
}

// adminWrap requires an authenticated administrator.
func (cfg routeConfig) adminWrap() func(http.Handler) http.Handler {
	return RequireRole(cfg.Verify, domainauth.RoleAdmin)
}

// adminWriteWrap chains the content write policy with the admin check so
// exhausted windows are rejected before credentials are even looked at.
func (cfg routeConfig) adminWriteWrap() func(http.Handler) http.Handler {
	limit := cfg.limit("content", cfg.Policies.Content)
	role := cfg.adminWrap()
	return func(h http.Handler) http.Handler {
		return limit(role(h))
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg routeConfig) {
	mux.Handle("POST /api/auth/login", cfg.limit("login", cfg.Policies.Login)(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/auth/logout", cfg.limit("api", cfg.Policies.Default)(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /api/auth/me", RequireAuth(cfg.Verify)(http.HandlerFunc(h.Me)))
}

func registerPublicRoutes(mux *http.ServeMux, posts *PostHandlers, categories *CategoryHandlers, cfg routeConfig) {
	wrap := cfg.limit("api", cfg.Policies.Default)
	mux.Handle("GET /api/posts", wrap(http.HandlerFunc(posts.ListPublished)))
	mux.Handle("GET /api/posts/{slug}", wrap(http.HandlerFunc(posts.GetBySlug)))
	mux.Handle("GET /api/categories", wrap(http.HandlerFunc(categories.List)))
	mux.Handle("GET /api/categories/{slug}", wrap(http.HandlerFunc(categories.GetBySlug)))
}

func registerAdminPostRoutes(mux *http.ServeMux, h *PostHandlers, cfg routeConfig) {
	admin := cfg.adminWrap()
	write := cfg.adminWriteWrap()
	mux.Handle("GET /api/admin/posts", admin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/admin/posts/{id}", admin(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/admin/posts", write(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/admin/posts/{id}", write(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/admin/posts/{id}", write(http.HandlerFunc(h.Delete)))
}

func registerAdminCategoryRoutes(mux *http.ServeMux, h *CategoryHandlers, cfg routeConfig) {
	admin := cfg.adminWrap()
	write := cfg.adminWriteWrap()
	mux.Handle("GET /api/admin/categories", admin(http.HandlerFunc(h.ListAdmin)))
	mux.Handle("POST /api/admin/categories", write(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/admin/categories/{id}", write(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/admin/categories/{id}", write(http.HandlerFunc(h.Delete)))
}
