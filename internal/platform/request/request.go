// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/ctxutil"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Admin extracts the authenticated admin claims from the request context.
//
// Returns nil if the request is not authenticated.
func Admin(request *http.Request) *sec.AdminClaims {
	return ctxutil.GetAdmin(request.Context())
}

// RequiredAdmin ensures the request is authenticated as the admin account.
func RequiredAdmin(request *http.Request) (*sec.AdminClaims, error) {
	claims := ctxutil.GetAdmin(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
