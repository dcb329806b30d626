// Package service orchestrates the application's use cases on top of the
// repositories, token codec, and cache adapters.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/ports"
)

// dummyHash is compared against when the email is unknown so a login
// attempt costs the same whether or not the account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserStore
	Tokens ports.TokenCodec
	Audit  *AuditService
	Logger *slog.Logger
	Now    func() time.Time
}

// AuthService handles credential login and token verification.
type AuthService struct {
	users  ports.UserStore
	tokens ports.TokenCodec
	audit  *AuditService
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:  opts.Users,
		tokens: opts.Tokens,
		audit:  opts.Audit,
		logger: logger.With("component", "auth"),
		now:    now,
	}
}

// LoginResult carries the session token minted for a successful login.
type LoginResult struct {
	User      domainauth.AuthenticatedUser
	Token     string
	ExpiresAt time.Time
}

// Login verifies the email/password pair and mints a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest, clientIP string) (LoginResult, error) {
	if err := req.Validate(); err != nil {
		return LoginResult{}, apperrors.Validation(err.Error())
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			s.auditFailedLogin(req.Email, clientIP)
			return LoginResult{}, apperrors.Unauthenticated("invalid credentials", err)
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.auditFailedLogin(req.Email, clientIP)
		return LoginResult{}, apperrors.Unauthenticated("invalid credentials", err)
	}

	authed := user.Authenticated()
	token, expiresAt, err := s.tokens.Issue(authed, s.now())
	if err != nil {
		return LoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "issue token")
	}

	if s.audit != nil {
		s.audit.Log(model.AuditLogin, authed, clientIP, nil)
	}
	s.logger.InfoContext(ctx, "user logged in", "user_id", authed.ID, "role", authed.Role)

	return LoginResult{User: authed, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout records the logout in the audit trail. Tokens are stateless so
// there is nothing to revoke server-side; the cookie is cleared by the
// HTTP layer.
func (s *AuthService) Logout(user domainauth.AuthenticatedUser, clientIP string) {
	if s.audit != nil {
		s.audit.Log(model.AuditLogout, user, clientIP, nil)
	}
}

// Verify validates a session token and loads the current account behind
// it. A token for a since-deleted user fails with not found.
func (s *AuthService) Verify(ctx context.Context, token string) (domainauth.AuthenticatedUser, error) {
	claims, err := s.tokens.Verify(token, s.now())
	if err != nil {
		return domainauth.AuthenticatedUser{}, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return domainauth.AuthenticatedUser{}, apperrors.NotFound("user not found")
		}
		return domainauth.AuthenticatedUser{}, err
	}

	return user.Authenticated(), nil
}

// RequireRole checks that the user holds exactly the given role. There
// is no role hierarchy; an ADMIN check passes only for ADMIN.
func (s *AuthService) RequireRole(user domainauth.AuthenticatedUser, role domainauth.Role) error {
	if user.Role != role {
		return apperrors.Forbidden("insufficient permissions")
	}
	return nil
}

func (s *AuthService) auditFailedLogin(email, clientIP string) {
	if s.audit != nil {
		s.audit.LogAnonymous(model.AuditLoginFailed, email, clientIP, nil)
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
