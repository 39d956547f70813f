// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/constants"
)

const (
	igdbTokenURL = "https://id.twitch.tv/oauth2/token"
	igdbGamesURL = "https://api.igdb.com/v4/games"
)

// IGDBClient queries the IGDB game database through the Twitch API gateway.
//
// # Authentication
//
// IGDB uses Twitch client-credentials tokens. Tokens are cached in Redis
// under [constants.RedisKeyIGDBToken] with the provider-reported lifetime
// minus a safety margin.
type IGDBClient struct {
	clientID     string
	clientSecret string
	tokens       TokenCache
	httpClient   *http.Client
}

// NewIGDBClient constructs an [IGDBClient] with the given Twitch credentials.
func NewIGDBClient(clientID, clientSecret string, tokens TokenCache) *IGDBClient {
	return &IGDBClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
		httpClient:   newProviderHTTPClient(),
	}
}

// igdbGame is the raw IGDB response shape this client consumes.
type igdbGame struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cover *struct {
		URL string `json:"url"`
	} `json:"cover"`
	FirstReleaseDate int64    `json:"first_release_date"`
	TotalRating      *float64 `json:"total_rating"`
}

// token returns a valid access token, fetching a fresh one on cache miss.
func (client *IGDBClient) token(ctx context.Context) (string, error) {
	cached, err := client.tokens.Get(ctx, constants.RedisKeyIGDBToken)
	if err != nil {
		return "", err
	}
	if cached != "" {
		return cached, nil
	}

	form := url.Values{}
	form.Set("client_id", client.clientID)
	form.Set("client_secret", client.clientSecret)
	form.Set("grant_type", "client_credentials")

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, igdbTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("igdb_token_request_failed: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("igdb_token_fetch_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("igdb_token_fetch_failed: status %d", response.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("igdb_token_decode_failed: %w", err)
	}

	timeToLive := time.Duration(payload.ExpiresIn)*time.Second - tokenSafetyMargin
	if timeToLive > 0 {
		// Cache failures only cost an extra token fetch next time.
		_ = client.tokens.Set(ctx, constants.RedisKeyIGDBToken, payload.AccessToken, timeToLive)
	}

	return payload.AccessToken, nil
}

// query runs one Apicalypse query against the games endpoint.
func (client *IGDBClient) query(ctx context.Context, body string) ([]igdbGame, error) {
	accessToken, err := client.token(ctx)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, igdbGamesURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("igdb_query_request_failed: %w", err)
	}
	request.Header.Set("Client-ID", client.clientID)
	request.Header.Set("Authorization", "Bearer "+accessToken)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("igdb_query_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("igdb_query_failed: status %d: %s", response.StatusCode, raw)
	}

	var games []igdbGame
	if err := json.NewDecoder(response.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("igdb_query_decode_failed: %w", err)
	}

	return games, nil
}

// SearchGames runs a full-text game search.
func (client *IGDBClient) SearchGames(ctx context.Context, term string) ([]Result, error) {
	body := fmt.Sprintf(
		`search "%s"; fields name, cover.url, first_release_date, total_rating; limit 20;`,
		strings.ReplaceAll(term, `"`, ""),
	)

	games, err := client.query(ctx, body)
	if err != nil {
		return nil, apperr.Upstream("IGDB", err)
	}

	return normalizeIGDBGames(games), nil
}

// GamesByIDs fetches specific games by their IGDB IDs.
func (client *IGDBClient) GamesByIDs(ctx context.Context, ids []int64) ([]Result, error) {
	if len(ids) == 0 {
		return []Result{}, nil
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	body := fmt.Sprintf(
		`fields name, cover.url, first_release_date, total_rating; where id = (%s); limit %d;`,
		strings.Join(parts, ","), len(ids),
	)

	games, err := client.query(ctx, body)
	if err != nil {
		return nil, apperr.Upstream("IGDB", err)
	}

	return normalizeIGDBGames(games), nil
}

// normalizeIGDBGames converts raw IGDB rows into the shared result shape.
func normalizeIGDBGames(games []igdbGame) []Result {
	results := make([]Result, 0, len(games))
	for _, game := range games {
		result := Result{
			ID:    game.ID,
			Title: game.Name,
		}

		if game.Cover != nil {
			result.Cover = normalizeIGDBCover(game.Cover.URL)
		}
		if game.FirstReleaseDate > 0 {
			year := time.Unix(game.FirstReleaseDate, 0).UTC().Year()
			result.Year = &year
		}
		if game.TotalRating != nil {
			result.Score = int(math.Round(*game.TotalRating / 10))
		}

		results = append(results, result)
	}
	return results
}

// normalizeIGDBCover upgrades thumbnail URLs to the cover-sized rendition
// and makes protocol-relative URLs absolute.
func normalizeIGDBCover(coverURL string) string {
	coverURL = strings.Replace(coverURL, "t_thumb", "t_cover_big", 1)
	if strings.HasPrefix(coverURL, "//") {
		coverURL = "https:" + coverURL
	}
	return coverURL
}
