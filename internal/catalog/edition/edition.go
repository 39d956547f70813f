// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package edition maps storefront game editions (deluxe releases, DLC,
// bundles) to their main game so search results stay free of duplicates.
package edition

import "context"

// Version types an edition mapping can carry.
const (
	VersionEdition = "edition"
	VersionDLC     = "dlc"
	VersionBundle  = "bundle"
	VersionUnknown = "unknown"
)

// VersionTypes lists every valid version type value.
var VersionTypes = []string{VersionEdition, VersionDLC, VersionBundle, VersionUnknown}

// GameVersion links one storefront edition to its main game by IGDB IDs.
//
// EditionID is globally unique: an edition belongs to exactly one main game.
type GameVersion struct {
	MainID       int64  `json:"main_igdb_id"`
	EditionID    int64  `json:"edition_igdb_id"`
	MainTitle    string `json:"main_title"`
	EditionTitle string `json:"edition_title"`
	VersionType  string `json:"version_type"`
}

// Repository defines the persistence contract for edition mappings.
type Repository interface {
	// ListVersions returns every mapping ordered by main title.
	ListVersions(ctx context.Context) ([]*GameVersion, error)

	// VersionsByMain returns the mappings of one main game.
	VersionsByMain(ctx context.Context, mainID int64) ([]*GameVersion, error)

	// EditionIDs returns the set of every known edition IGDB ID. Used by
	// game search to filter duplicates out of provider results.
	EditionIDs(ctx context.Context) (map[int64]struct{}, error)

	// CreateVersion inserts a new mapping.
	CreateVersion(ctx context.Context, entity *GameVersion) error

	// DeleteVersion removes a mapping by its edition IGDB ID.
	DeleteVersion(ctx context.Context, editionID int64) error
}
