// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package profile manages the singleton site configuration: display name,
// bio and the decorative layout settings of the public page.
package profile

import (
	"context"
	"encoding/json"
)

// Profile is the singleton site configuration row.
//
// DecoPairs and DecoGroups are opaque layout documents owned by the
// frontend; the API stores and returns them verbatim as JSON.
type Profile struct {
	Username   string          `json:"username"`
	Bio        string          `json:"bio"`
	DecoPairs  json.RawMessage `json:"decoPairs"`
	DecoGroups json.RawMessage `json:"decoGroups"`
}

// Repository defines the persistence contract for the profile singleton.
type Repository interface {
	// GetProfile reads the singleton configuration row.
	GetProfile(ctx context.Context) (*Profile, error)

	// PutProfile replaces the singleton configuration row.
	PutProfile(ctx context.Context, entity *Profile) error
}
