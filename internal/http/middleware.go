package httpx

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/dataetica/dataetica-api/internal/domain/auth"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/ratelimit"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// VerifyFunc validates a session token and resolves the account behind it.
type VerifyFunc func(ctx context.Context, token string) (auth.AuthenticatedUser, error)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that requires a valid session cookie.
// On success the resolved user is placed in the request context; the
// wrapped handler never runs otherwise.
func RequireAuth(verify VerifyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userFromRequest(r, verify)
			if err != nil {
				WriteAppError(w, err)
				return
			}
			ctx := SetUserInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that requires a valid session cookie
// whose account holds exactly the given role.
func RequireRole(verify VerifyFunc, role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userFromRequest(r, verify)
			if err != nil {
				WriteAppError(w, err)
				return
			}
			if user.Role != role {
				WriteAppError(w, apperrors.Forbidden("insufficient permissions"))
				return
			}
			ctx := SetUserInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromRequest(r *http.Request, verify VerifyFunc) (auth.AuthenticatedUser, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return auth.AuthenticatedUser{}, apperrors.Unauthenticated("authentication required", errors.New("missing session cookie"))
	}
	return verify(r.Context(), cookie.Value)
}

// RateLimit returns a middleware that counts each request against the
// caller's IP under the given policy. When the window is exhausted the
// wrapped handler does not run and the client gets a 429 with a
// Retry-After hint.
func RateLimit(limiter *ratelimit.Limiter, scope string, policy ratelimit.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + ClientIP(r)
			res := limiter.Check(key, policy)
			if !res.Allowed {
				WriteAppError(w, apperrors.RateLimited("too many requests, please try again later", res.RetryAfter))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Compression returns a middleware that gzip-compresses responses for
// clients that accept it.
func Compression() func(http.Handler) http.Handler {
	pool := &sync.Pool{
		New: func() any {
			return gzip.NewWriter(io.Discard)
		},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}
			gz := pool.Get().(*gzip.Writer)
			gz.Reset(w)
			defer func() {
				_ = gz.Close()
				pool.Put(gz)
			}()

			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Del("Content-Length")
			next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
		})
	}
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}
