// Package auth is the authentication collaborator: credential verification,
// session issuance, and logout. The guard consumes only the resulting user
// and session state; credential mechanics stay opaque to the access core.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"

	"condogate/internal/domain"
	"condogate/internal/jwttoken"
	"condogate/internal/platform/metrics"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

// LoginResult carries the minted token and the authenticated user back to the
// transport layer.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type Service struct {
	users    storage.UserStore
	sessions SessionStore
	tokens   *jwttoken.JWTService
	tokenTTL time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(users storage.UserStore, sessions SessionStore, tokens *jwttoken.JWTService, tokenTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		metrics:  m,
		now:      time.Now,
	}
}

// Login verifies the national id / password pair and opens a session. The
// error is the same for an unknown account and a wrong password so login
// responses don't leak which accounts exist.
func (s *Service) Login(ctx context.Context, nationalID, password, userAgent string) (LoginResult, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" || password == "" {
		return LoginResult{}, dErrors.New(dErrors.CodeBadRequest, "national id and password are required")
	}

	user, err := s.users.FindByNationalID(ctx, nationalID)
	if err != nil {
		s.metrics.IncrementLogin("failure")
		return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.metrics.IncrementLogin("failure")
		return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		Device:    deviceLabel(userAgent),
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("save session: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, session.ID, user.Role, s.tokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate access token: %w", err)
	}

	s.metrics.IncrementLogin("success")
	user.PasswordHash = ""
	return LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// Logout revokes the session. Revoking an already-revoked session is not an
// error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves the account behind validated claims, rejecting tokens
// whose session was revoked.
func (s *Service) CurrentUser(ctx context.Context, claims *jwttoken.Claims) (domain.User, error) {
	if _, err := s.sessions.FindByID(ctx, claims.SessionID); err != nil {
		return domain.User{}, dErrors.New(dErrors.CodeUnauthorized, "session revoked or expired")
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return domain.User{}, dErrors.New(dErrors.CodeUnauthorized, "unknown account")
	}
	user.PasswordHash = ""
	return user, nil
}

func deviceLabel(rawUserAgent string) string {
	if strings.TrimSpace(rawUserAgent) == "" {
		return "unknown device"
	}
	ua := useragent.New(rawUserAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		return "unknown device"
	}
	if ua.OSInfo().Name != "" {
		return fmt.Sprintf("%s on %s", browser, ua.OSInfo().Name)
	}
	return browser
}
