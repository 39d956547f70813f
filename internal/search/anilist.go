// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
)

const anilistGraphQLURL = "https://graphql.anilist.co"

// AniListClient queries the AniList GraphQL API for anime and manga.
// AniList requires no authentication for read queries.
type AniListClient struct {
	httpClient *http.Client
}

// NewAniListClient constructs an [AniListClient].
func NewAniListClient() *AniListClient {
	return &AniListClient{httpClient: newProviderHTTPClient()}
}

// anilistSearchQuery is the GraphQL document for media search.
const anilistSearchQuery = `
query ($search: String, $type: MediaType) {
  Page(perPage: 20) {
    media(search: $search, type: $type, sort: SEARCH_MATCH) {
      id
      title { english romaji }
      coverImage { large }
      startDate { year }
      averageScore
    }
  }
}`

// anilistMedia is the raw AniList response shape this client consumes.
type anilistMedia struct {
	ID    int64 `json:"id"`
	Title struct {
		English string `json:"english"`
		Romaji  string `json:"romaji"`
	} `json:"title"`
	CoverImage struct {
		Large string `json:"large"`
	} `json:"coverImage"`
	StartDate struct {
		Year *int `json:"year"`
	} `json:"startDate"`
	AverageScore *float64 `json:"averageScore"`
}

// SearchMedia runs a full-text search for the given AniList media type
// ("ANIME" or "MANGA").
func (client *AniListClient) SearchMedia(ctx context.Context, term, mediaType string) ([]Result, error) {
	payload := map[string]any{
		"query": anilistSearchQuery,
		"variables": map[string]any{
			"search": term,
			"type":   mediaType,
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("anilist_encode_failed: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, anilistGraphQLURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("anilist_request_failed: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Upstream("AniList", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("AniList", fmt.Errorf("status %d", response.StatusCode))
	}

	var decoded struct {
		Data struct {
			Page struct {
				Media []anilistMedia `json:"media"`
			} `json:"Page"`
		} `json:"data"`
	}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, apperr.Upstream("AniList", err)
	}

	return normalizeAniListMedia(decoded.Data.Page.Media), nil
}

// normalizeAniListMedia converts raw AniList rows into the shared result shape.
//
// English titles are preferred; romaji is the fallback. AniList scores run
// 0-100, so they are divided down to the site's 0-10 scale.
func normalizeAniListMedia(media []anilistMedia) []Result {
	results := make([]Result, 0, len(media))
	for _, entry := range media {
		title := entry.Title.English
		if title == "" {
			title = entry.Title.Romaji
		}

		result := Result{
			ID:    entry.ID,
			Title: title,
			Cover: entry.CoverImage.Large,
			Year:  entry.StartDate.Year,
		}
		if entry.AverageScore != nil {
			result.Score = int(math.Round(*entry.AverageScore / 10))
		}

		results = append(results, result)
	}
	return results
}
