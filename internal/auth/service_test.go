// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
)

// fakeTokenProvider returns a fixed token string.
type fakeTokenProvider struct {
	issued []string
}

func (f *fakeTokenProvider) GenerateAccessToken(username string, _ time.Duration) (string, error) {
	f.issued = append(f.issued, username)
	return "token-" + username, nil
}

func newTestService(t *testing.T, password string) (*Service, *fakeTokenProvider) {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	provider := &fakeTokenProvider{}
	return NewService("admin", hash, provider, 12*time.Hour, slog.Default()), provider
}

/*
TestLogin_IssuesTokenForValidCredentials verifies the happy path.
*/
func TestLogin_IssuesTokenForValidCredentials(t *testing.T) {
	service, provider := newTestService(t, "correct horse battery staple")

	session, err := service.Login(context.Background(), LoginInput{
		Username: "admin",
		Password: "correct horse battery staple",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-admin", session.AccessToken)
	assert.Equal(t, []string{"admin"}, provider.issued)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), session.ExpiresAt, time.Minute)
}

/*
TestLogin_RejectsBadCredentials verifies that wrong usernames and wrong
passwords both produce the same Unauthorized error.
*/
func TestLogin_RejectsBadCredentials(t *testing.T) {
	testCases := []struct {
		name  string
		input LoginInput
	}{
		{"wrong password", LoginInput{Username: "admin", Password: "nope"}},
		{"wrong username", LoginInput{Username: "root", Password: "correct horse battery staple"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, provider := newTestService(t, "correct horse battery staple")

			_, err := service.Login(context.Background(), testCase.input)

			require.Error(t, err)
			assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
			assert.Empty(t, provider.issued)
		})
	}
}
