package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/mocks"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newAuthService(t *testing.T) (*mocks.MockUserRepository, *mocks.MockTokenCodec, *AuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenCodec(ctrl)

	svc := NewAuthService(AuthServiceOptions{
		Users:  users,
		Tokens: tokens,
		Now:    func() time.Time { return fixedNow },
	})
	return users, tokens, svc
}

func storedUser(t *testing.T, password string) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return model.User{
		ID:           "u-1",
		Email:        "editor@dataetica.example",
		Name:         "Editor",
		PasswordHash: string(hash),
		Role:         domainauth.RoleAdmin,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	users, tokens, svc := newAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "correct horse")

	users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	tokens.EXPECT().Issue(user.Authenticated(), fixedNow).
		Return("signed-token", fixedNow.Add(domainauth.TokenTTL), nil)

	res, err := svc.Login(ctx, model.LoginRequest{Email: user.Email, Password: "correct horse"}, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, fixedNow.Add(domainauth.TokenTTL), res.ExpiresAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "correct horse")

	users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, model.LoginRequest{Email: user.Email, Password: "battery staple"}, "1.2.3.4")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "ghost@dataetica.example").
		Return(model.User{}, apperrors.NotFound("user not found"))

	_, err := svc.Login(ctx, model.LoginRequest{
		Email:    "ghost@dataetica.example",
		Password: "anything",
	}, "1.2.3.4")
	require.Error(t, err)
	// Unknown accounts are reported identically to bad passwords.
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestAuthService_Login_InvalidRequest(t *testing.T) {
	t.Parallel()
	_, _, svc := newAuthService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "", Password: ""}, "1.2.3.4")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_Verify_Success(t *testing.T) {
	t.Parallel()
	users, tokens, svc := newAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "pw")

	tokens.EXPECT().Verify("tok", fixedNow).Return(domainauth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil)
	users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)

	authed, err := svc.Verify(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Equal(t, domainauth.RoleAdmin, authed.Role)
}

func TestAuthService_Verify_DeletedUser(t *testing.T) {
	t.Parallel()
	users, tokens, svc := newAuthService(t)
	ctx := context.Background()

	tokens.EXPECT().Verify("tok", fixedNow).Return(domainauth.Claims{
		UserID: "gone",
		Role:   domainauth.RoleUser,
	}, nil)
	users.EXPECT().GetByID(ctx, "gone").
		Return(model.User{}, apperrors.NotFound("user not found"))

	_, err := svc.Verify(ctx, "tok")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAuthService_Verify_BadToken(t *testing.T) {
	t.Parallel()
	_, tokens, svc := newAuthService(t)

	tokens.EXPECT().Verify("expired", fixedNow).
		Return(domainauth.Claims{}, apperrors.Unauthenticated("invalid or expired token", nil))

	_, err := svc.Verify(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestAuthService_RequireRole(t *testing.T) {
	t.Parallel()
	_, _, svc := newAuthService(t)

	admin := domainauth.AuthenticatedUser{ID: "a", Role: domainauth.RoleAdmin}
	reader := domainauth.AuthenticatedUser{ID: "b", Role: domainauth.RoleUser}

	assert.NoError(t, svc.RequireRole(admin, domainauth.RoleAdmin))
	assert.True(t, apperrors.IsForbidden(svc.RequireRole(reader, domainauth.RoleAdmin)))
	// Strict equality: holding ADMIN does not satisfy a USER check.
	assert.True(t, apperrors.IsForbidden(svc.RequireRole(admin, domainauth.RoleUser)))
}
