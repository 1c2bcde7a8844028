package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cobaltlane/taskhub/internal/domain"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/cryptox"
	"github.com/cobaltlane/taskhub/pkg/idx"
	"github.com/cobaltlane/taskhub/pkg/jwtx"
	"github.com/cobaltlane/taskhub/pkg/slogx"
)

// MinPasswordLength is the registration password policy floor.
const MinPasswordLength = 8

var (
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrWeakPassword       = errors.New("weak_password")
	ErrDuplicateEmail     = errors.New("duplicate_email")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// AuthService composes the credential store, password hasher and token
// issuer/verifier into the register, login and authenticate flows. It holds
// no per-request state; every request independently re-derives identity
// from its presented token.
type AuthService struct {
	Store     store.Store
	Signer    *jwtx.HS256Signer
	Verifier  *jwtx.HS256Verifier
	Issuer    string
	AccessTTL time.Duration
}

// Register validates the password policy, hashes the password and persists
// the new identity. The uniqueness race is settled by the store's unique
// constraint, not here.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	return u.ID, nil
}

// Login exchanges valid credentials for a signed access token. Unknown
// email and wrong password produce the identical ErrInvalidCredentials,
// and the unknown-email path burns a decoy hash verification so the two
// failures take near-equal time.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.DecoyVerify(password)
			return domain.AccessToken{}, ErrInvalidCredentials
		}
		return domain.AccessToken{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.AccessToken{}, ErrInvalidCredentials
		}
		// A corrupt stored record is a server fault, not a credential
		// failure; fail the request without revealing which.
		l.Error("stored credential record unreadable", slog.String("user_id", u.ID), slog.Any("err", err))
		return domain.AccessToken{}, err
	}

	claims := jwtx.NewAccessClaims(u.ID, u.Email, s.Issuer, s.AccessTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return domain.AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.AccessTTL,
	}, nil
}

// ChangePassword rotates an authenticated user's password after verifying
// the current one. Outstanding tokens stay valid until expiry; there is no
// server-side revocation.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}

// Authenticate resolves a presented token into the authenticated user id.
// All verifier failure kinds collapse into ErrUnauthenticated; the internal
// kind is logged for diagnostics only.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		slogx.FromContext(ctx).Warn("token verification failed", slog.Any("err", err))
		return "", ErrUnauthenticated
	}
	if claims.Subject == "" {
		return "", ErrUnauthenticated
	}
	return claims.Subject, nil
}

// NormalizeEmail lower-cases and trims an email so lookups and the store's
// unique index agree on identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
