package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sergiomvp10/Emunahacademy/internal/memstore"
	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/pkg/config"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

func newAuthService(store *memstore.Store) *AuthService {
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "emunah-academy-test"}
	return NewAuthService(store.Users(), cfg, nil, zap.NewNop())
}

func registerPayload() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "ana@example.com",
		Name:     "Ana",
		Role:     models.RoleStudent,
		Password: "s3cret-pass",
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerPayload())
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.Equal(t, models.RoleStudent, registered.User.Role)
	assert.NotEqual(t, "s3cret-pass", registered.User.PasswordHash)

	logged, err := svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.AccessToken)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerPayload())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerPayload())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestAuthRegisterUnknownRole(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	payload := registerPayload()
	payload.Role = models.UserRole("janitor")
	_, err := svc.Register(context.Background(), payload)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerPayload())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthLoginInactiveAccount(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Email: "ana@example.com", PasswordHash: string(hash), Name: "Ana", Role: models.RoleStudent, Active: false}
	require.NoError(t, store.Users().Create(ctx, user))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthValidateTokenRoundtrip(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerPayload())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthValidateTokenRejectsGarbage(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthValidateTokenRejectsWrongSecret(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerPayload())
	require.NoError(t, err)

	other := NewAuthService(store.Users(), config.JWTConfig{Secret: "different", Expiration: time.Hour, Issuer: "emunah-academy-test"}, nil, zap.NewNop())
	_, err = other.ValidateToken(registered.AccessToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}
