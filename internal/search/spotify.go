// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/constants"
)

const (
	spotifyTokenURL  = "https://accounts.spotify.com/api/token"
	spotifySearchURL = "https://api.spotify.com/v1/search"
)

// SpotifyClient queries the Spotify catalog for albums.
//
// Client-credentials tokens are cached in Redis under
// [constants.RedisKeySpotifyToken], same scheme as IGDB.
type SpotifyClient struct {
	clientID     string
	clientSecret string
	tokens       TokenCache
	httpClient   *http.Client
}

// NewSpotifyClient constructs a [SpotifyClient] with the given credentials.
func NewSpotifyClient(clientID, clientSecret string, tokens TokenCache) *SpotifyClient {
	return &SpotifyClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
		httpClient:   newProviderHTTPClient(),
	}
}

// token returns a valid access token, fetching a fresh one on cache miss.
func (client *SpotifyClient) token(ctx context.Context) (string, error) {
	cached, err := client.tokens.Get(ctx, constants.RedisKeySpotifyToken)
	if err != nil {
		return "", err
	}
	if cached != "" {
		return cached, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, spotifyTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("spotify_token_request_failed: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.SetBasicAuth(client.clientID, client.clientSecret)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("spotify_token_fetch_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify_token_fetch_failed: status %d", response.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("spotify_token_decode_failed: %w", err)
	}

	timeToLive := time.Duration(payload.ExpiresIn)*time.Second - tokenSafetyMargin
	if timeToLive > 0 {
		_ = client.tokens.Set(ctx, constants.RedisKeySpotifyToken, payload.AccessToken, timeToLive)
	}

	return payload.AccessToken, nil
}

// spotifyAlbum is the raw Spotify response shape this client consumes.
type spotifyAlbum struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	ReleaseDate string `json:"release_date"`
}

// SearchAlbums runs a full-text album search.
func (client *SpotifyClient) SearchAlbums(ctx context.Context, term string) ([]AlbumResult, error) {
	accessToken, err := client.token(ctx)
	if err != nil {
		return nil, apperr.Upstream("Spotify", err)
	}

	query := url.Values{}
	query.Set("q", term)
	query.Set("type", "album")
	query.Set("limit", "20")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, spotifySearchURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify_search_request_failed: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Upstream("Spotify", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("Spotify", fmt.Errorf("status %d", response.StatusCode))
	}

	var decoded struct {
		Albums struct {
			Items []spotifyAlbum `json:"items"`
		} `json:"albums"`
	}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, apperr.Upstream("Spotify", err)
	}

	return normalizeSpotifyAlbums(decoded.Albums.Items), nil
}

// normalizeSpotifyAlbums converts raw Spotify rows into the shared shape.
func normalizeSpotifyAlbums(albums []spotifyAlbum) []AlbumResult {
	results := make([]AlbumResult, 0, len(albums))
	for _, entry := range albums {
		result := AlbumResult{
			ID:    entry.ID,
			Title: entry.Name,
			Album: entry.Name,
		}

		if len(entry.Artists) > 0 {
			result.Artist = entry.Artists[0].Name
		}
		if len(entry.Images) > 0 {
			result.Cover = entry.Images[0].URL
		}
		// Release dates arrive as "YYYY", "YYYY-MM" or "YYYY-MM-DD".
		if len(entry.ReleaseDate) >= 4 {
			if year, err := strconv.Atoi(entry.ReleaseDate[:4]); err == nil {
				result.Year = &year
			}
		}

		results = append(results, result)
	}
	return results
}
