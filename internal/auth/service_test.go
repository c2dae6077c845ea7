package auth

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"condogate/internal/domain"
	"condogate/internal/jwttoken"
	"condogate/internal/platform/metrics"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

const chromeOnLinux = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func newAuthFixture(t *testing.T) (*Service, *jwttoken.JWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	users := storage.NewInMemoryUserStore()
	require.NoError(t, users.Save(context.Background(), domain.User{
		ID: "user-1", NationalID: "123.456.789-00", Name: "João Porteiro",
		Role: domain.RoleGatekeeper, PasswordHash: string(hash),
	}))

	tokens := jwttoken.NewJWTService("test-signing-key", "condogate")
	svc := NewService(users, NewInMemorySessionStore(), tokens, time.Hour, metrics.New(prometheus.NewRegistry()))
	return svc, tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials mint a validatable token", func(t *testing.T) {
		svc, tokens := newAuthFixture(t)

		result, err := svc.Login(ctx, "123.456.789-00", "123456", chromeOnLinux)
		require.NoError(t, err)
		assert.Equal(t, "João Porteiro", result.User.Name)
		assert.Empty(t, result.User.PasswordHash, "hashes never leave the service")

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, string(domain.RoleGatekeeper), claims.Role)
		assert.NotEmpty(t, claims.SessionID)
	})

	t.Run("leading and trailing spaces in the national id are ignored", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		_, err := svc.Login(ctx, "  123.456.789-00  ", "123456", chromeOnLinux)
		assert.NoError(t, err)
	})

	t.Run("unknown account and wrong password fail identically", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, unknownErr := svc.Login(ctx, "000.000.000-00", "123456", chromeOnLinux)
		_, wrongErr := svc.Login(ctx, "123.456.789-00", "wrong", chromeOnLinux)

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.True(t, dErrors.Is(unknownErr, dErrors.CodeUnauthorized))
	})

	t.Run("missing credentials are a bad request", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		_, err := svc.Login(ctx, "", "123456", chromeOnLinux)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t)

	result, err := svc.Login(ctx, "123.456.789-00", "123456", chromeOnLinux)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(result.Token)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	// The token is still cryptographically valid but the session behind it
	// is gone, so the identity no longer resolves.
	_, err = svc.CurrentUser(ctx, claims)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))

	assert.NoError(t, svc.Logout(ctx, claims.SessionID), "logout is idempotent")
}

func TestDeviceLabel(t *testing.T) {
	assert.Equal(t, "unknown device", deviceLabel(""))
	assert.Equal(t, "unknown device", deviceLabel("   "))
	assert.Contains(t, deviceLabel(chromeOnLinux), "Chrome")
}

func TestInMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store := NewInMemorySessionStore()
		session := Session{ID: "session-1", UserID: "user-1", Role: domain.RoleGatekeeper,
			CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, store.Save(ctx, session))

		found, err := store.FindByID(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, session, found)
	})

	t.Run("missing session returns ErrNotFound", func(t *testing.T) {
		store := NewInMemorySessionStore()
		_, err := store.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("expired sessions are dropped on lookup", func(t *testing.T) {
		store := NewInMemorySessionStore()
		require.NoError(t, store.Save(ctx, Session{ID: "session-1",
			ExpiresAt: time.Now().Add(time.Minute)}))

		store.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := store.FindByID(ctx, "session-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
