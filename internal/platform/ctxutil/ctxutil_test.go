// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adriaferrer/kiroku/internal/platform/ctxutil"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
)

/*
TestContext_RequestID verifies that request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Admin verifies that admin claims can be stored in context.
*/
func TestContext_Admin(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AdminClaims{Username: "adria"}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAdmin(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAdmin(ctx, claims)
	retrieved := ctxutil.GetAdmin(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "adria", retrieved.Username)
}
