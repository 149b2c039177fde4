package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// SessionUseCase exchanges identity tokens for session artifacts and
// verifies them. Artifacts are signed tokens bound to the configured
// issuer; a Postgres session row backs each artifact so role changes can
// revoke artifacts that are still in the wild.
type SessionUseCase struct {
	identityGateway port.IdentityGateway
	sessionRepo     port.SessionRepository
	identityRepo    port.IdentityRepository
	secret          []byte
	issuer          string
	ttl             time.Duration
	logger          *slog.Logger
}

// NewSessionUseCase creates a new SessionUseCase instance
func NewSessionUseCase(
	identityGateway port.IdentityGateway,
	sessionRepo port.SessionRepository,
	identityRepo port.IdentityRepository,
	secret string,
	issuer string,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		identityGateway: identityGateway,
		sessionRepo:     sessionRepo,
		identityRepo:    identityRepo,
		secret:          []byte(secret),
		issuer:          issuer,
		ttl:             ttl,
		logger:          logger.With("component", "session_usecase"),
	}
}

type sessionClaims struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueSession validates the identity token with the provider, reads the
// current role claim and mints a signed session artifact. The role inside
// the artifact is a snapshot; it stays valid until the artifact expires
// or its session row is revoked.
func (uc *SessionUseCase) IssueSession(ctx context.Context, identityToken string) (*port.IssuedSession, error) {
	identity, err := uc.identityGateway.ValidateIdentityToken(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(identity.ID, identity.Role, uc.ttl)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	claims := sessionClaims{
		Email:     identity.Email,
		Role:      identity.Role.String(),
		SessionID: session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			Issuer:    uc.issuer,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	artifact, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session artifact: %w", err)
	}

	// Best effort: keep the mirror row fresh for listings and analytics
	if err := uc.mirrorLogin(ctx, identity); err != nil {
		uc.logger.Warn("failed to mirror login", "identity_id", identity.ID, "error", err)
	}

	uc.logger.Info("session issued",
		"identity_id", identity.ID,
		"session_id", session.ID,
		"role", identity.Role.String())

	return &port.IssuedSession{
		Artifact:  artifact,
		Role:      identity.Role,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// VerifySession checks signature, issuer, expiry and revocation state of
// an artifact. Any failure is terminal: there is no refresh path, the
// caller re-authenticates.
func (uc *SessionUseCase) VerifySession(ctx context.Context, artifact string) (*domain.SessionContext, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(artifact, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return uc.secret, nil
		},
		jwt.WithIssuer(uc.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrSessionExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, domain.ErrIssuerMismatch
		default:
			return nil, domain.ErrInvalidSession
		}
	}

	identityID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionRevoked
		}
		return nil, err
	}
	if !session.IsValid() {
		return nil, domain.ErrSessionRevoked
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	return &domain.SessionContext{
		IdentityID: identityID,
		Email:      claims.Email,
		Role:       role,
		SessionID:  sessionID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// RevokeSession deactivates the session row behind an artifact. Used by
// logout; the artifact keeps verifying its signature but fails the
// revocation check from here on.
func (uc *SessionUseCase) RevokeSession(ctx context.Context, artifact string) error {
	sessionCtx, err := uc.VerifySession(ctx, artifact)
	if err != nil {
		// Logging out an already dead session is fine
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrSessionRevoked) {
			return nil
		}
		return err
	}

	if err := uc.sessionRepo.Deactivate(ctx, sessionCtx.SessionID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	uc.logger.Info("session revoked",
		"identity_id", sessionCtx.IdentityID,
		"session_id", sessionCtx.SessionID)

	return nil
}

func (uc *SessionUseCase) mirrorLogin(ctx context.Context, identity *domain.Identity) error {
	if err := uc.identityRepo.Upsert(ctx, identity); err != nil {
		return err
	}
	return uc.identityRepo.RecordLogin(ctx, identity.ID)
}
