// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package search proxies the external catalog providers (IGDB, AniList,
// Spotify) behind a single API surface.
//
// # Architecture
//
// Each provider gets its own client type that owns authentication and
// response normalization. The service layer routes queries by media type and
// applies catalog knowledge (edition filtering) on top of the raw results.
// Provider credentials never reach the frontend.
package search

import (
	"context"
	"net/http"
	"time"
)

// Result is a normalized catalog search hit, shaped the same regardless of
// which provider produced it.
type Result struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	Year        *int   `json:"year"`
	Score       int    `json:"score"`
	VersionType string `json:"version_type,omitempty"`
}

// AlbumResult is a normalized music search hit.
type AlbumResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Cover  string `json:"cover"`
	Year   *int   `json:"year"`
}

// TokenCache stores short-lived provider OAuth tokens between requests.
//
// A cache miss is reported as an empty token with a nil error; errors are
// reserved for transport failures.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, timeToLive time.Duration) error
}

// providerTimeout bounds every outbound provider call.
const providerTimeout = 10 * time.Second

// newProviderHTTPClient builds the HTTP client shared by provider calls.
func newProviderHTTPClient() *http.Client {
	return &http.Client{Timeout: providerTimeout}
}

// tokenSafetyMargin is subtracted from provider-reported token lifetimes so
// a cached token never expires mid-request.
const tokenSafetyMargin = 5 * time.Minute
