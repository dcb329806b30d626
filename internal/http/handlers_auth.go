package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	"github.com/dataetica/dataetica-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest, clientIP string) (service.LoginResult, error)
	Logout(user domainauth.AuthenticatedUser, clientIP string)
	Verify(ctx context.Context, token string) (domainauth.AuthenticatedUser, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieSecure bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the credential login endpoint.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req, ClientIP(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, result.Token, result.ExpiresAt)
	WriteJSON(w, http.StatusOK, map[string]any{
		"user": userPayload(result.User),
	})
}

// Logout clears the session cookie and records who signed out. An
// expired or missing token still clears the cookie so a stale client
// can always sign out.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if user, verifyErr := h.Svc.Verify(r.Context(), cookie.Value); verifyErr == nil {
			h.Svc.Logout(user, ClientIP(r))
		} else {
			h.logger().DebugContext(r.Context(), "logout with invalid token", "error", verifyErr)
		}
	}

	h.clearSessionCookie(w)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Me returns the account behind the current session.
// GET /api/auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"user": userPayload(user),
	})
}

func userPayload(user domainauth.AuthenticatedUser) map[string]any {
	return map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}
