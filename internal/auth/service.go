// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package auth implements authentication for the single operator account.
//
// # Architecture
//
// Kiroku has exactly one admin. There is no user table: the username and the
// bcrypt hash of the password come from the environment, and a successful
// login yields a signed JWT that the middleware verifies statelessly.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the admin account.
	GenerateAccessToken(username string, timeToLive time.Duration) (string, error)
}

// Service implements the admin login use case.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	tokenProvider     TokenProvider
	tokenTTL          time.Duration
	logger            *slog.Logger
}

// NewService constructs a new auth [Service].
//
// # Parameters
//   - adminUsername: The configured operator username.
//   - adminPasswordHash: Bcrypt hash of the operator password, from the environment.
//   - tokenProvider: Issues signed access tokens.
//   - tokenTTL: Lifetime of issued tokens.
func NewService(
	adminUsername string,
	adminPasswordHash string,
	tokenProvider TokenProvider,
	tokenTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		tokenProvider:     tokenProvider,
		tokenTTL:          tokenTTL,
		logger:            logger,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
}

// Login validates the operator credentials and issues an access token.
//
// # Returns
//   - A [*LoginSession] containing the signed token.
//   - Returns [apperr.Unauthorized] if credentials do not match.
//
// Failures never disclose whether the username or the password was wrong.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Credential Verification ────────────────────────────────────────

	// Always run the bcrypt comparison, even on a username mismatch, to keep
	// response timing independent of which credential failed.
	passwordOK := sec.CheckPasswordHash(input.Password, service.adminPasswordHash)
	if input.Username != service.adminUsername || !passwordOK {
		service.logger.WarnContext(ctx, "auth_login_rejected",
			slog.String("username", input.Username),
		)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Token Issuance ─────────────────────────────────────────────────

	accessToken, err := service.tokenProvider.GenerateAccessToken(service.adminUsername, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(service.tokenTTL),
		Username:    service.adminUsername,
	}, nil
}
