// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/ctxutil"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from [sec.TokenService],
// allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AdminClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, the request proceeds as anonymous.
//  3. If present but invalid, the request is rejected with 401.
//  4. If valid, the admin claims are attached to the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			header := request.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				respond.Error(writer, request, apperr.Unauthorized("Malformed Authorization header"))
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests that are not authenticated as the admin
// account. Every mutating catalog route sits behind this gate.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetAdmin(request.Context()) == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
