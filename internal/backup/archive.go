// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/adriaferrer/kiroku/internal/catalog/character"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
)

// Archive layout roots.
const (
	contentRoot = "src/content/"
	publicRoot  = "public"
)

// workDocument is the per-work content file, the work entity minus its
// store-assigned identity and creation timestamp.
type workDocument struct {
	Title        string    `json:"title"`
	Cover        string    `json:"cover"`
	Year         *int      `json:"year"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Score        int       `json:"score"`
	StartDate    string    `json:"startDate"`
	FinishDate   string    `json:"finishDate"`
	CoverOffsetY int       `json:"coverOffsetY"`
	PrivateNotes string    `json:"privateNotes,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// characterDocument is a character as serialized into database.json.
type characterDocument struct {
	Title        string `json:"title"`
	Cover        string `json:"cover"`
	SourceID     *int   `json:"source_id,omitempty"`
	CoverOffsetY int    `json:"coverOffsetY"`
	SortOrder    *int   `json:"order,omitempty"`
}

// sagaFavorite is the expanded favorites entry for saga cards. Plain
// favorites serialize as their bare title string.
type sagaFavorite struct {
	IsSaga bool    `json:"isSaga"`
	Title  string  `json:"title"`
	Cover  *string `json:"cover"`
}

// monthlyPickDocument is a month's work pick inside database.json. The
// frontend reads the work reference under the "title" key.
type monthlyPickDocument struct {
	Month     string `json:"month"`
	WorkTitle string `json:"title"`
	Cover     string `json:"cover"`
}

// monthlyCharDocument is a month's character pick inside database.json. The
// frontend reads the character reference under the "name" key.
type monthlyCharDocument struct {
	Month    string `json:"month"`
	CharName string `json:"name"`
	Cover    string `json:"cover"`
}

// databaseDocument is the aggregate site database file.
type databaseDocument struct {
	Favorites            []any                 `json:"favorites"`
	MonthlyPicks         []monthlyPickDocument `json:"monthlyPicks"`
	MonthlyChars         []monthlyCharDocument `json:"monthlyChars"`
	Sagas                map[string][]string   `json:"sagas"`
	Characters           []characterDocument   `json:"characters"`
	LikedCharacters      []characterDocument   `json:"likedCharacters"`
	InterestedCharacters []characterDocument   `json:"interestedCharacters"`
	DislikedCharacters   []characterDocument   `json:"dislikedCharacters"`
	Username             string                `json:"username"`
	Bio                  string                `json:"bio"`
	DecoPairs            json.RawMessage       `json:"decoPairs"`
	DecoGroups           json.RawMessage       `json:"decoGroups"`
}

// buildDatabaseDocument assembles the aggregate document from a snapshot.
func buildDatabaseDocument(snapshot *Snapshot) *databaseDocument {
	document := &databaseDocument{
		Favorites:            []any{},
		MonthlyPicks:         []monthlyPickDocument{},
		MonthlyChars:         []monthlyCharDocument{},
		Sagas:                map[string][]string{},
		Characters:           []characterDocument{},
		LikedCharacters:      []characterDocument{},
		InterestedCharacters: []characterDocument{},
		DislikedCharacters:   []characterDocument{},
		DecoPairs:            json.RawMessage("[]"),
		DecoGroups:           json.RawMessage("[]"),
	}

	// Plain favorites collapse to their bare title; saga cards keep their
	// own cover so the frontend can render them without a work lookup.
	for _, entity := range snapshot.Favorites {
		if entity.IsSaga {
			document.Favorites = append(document.Favorites, sagaFavorite{
				IsSaga: true,
				Title:  entity.Title,
				Cover:  entity.Cover,
			})
			continue
		}
		document.Favorites = append(document.Favorites, entity.Title)
	}

	for _, entity := range snapshot.MonthlyPicks {
		document.MonthlyPicks = append(document.MonthlyPicks, monthlyPickDocument{
			Month:     entity.Month,
			WorkTitle: entity.WorkTitle,
			Cover:     entity.Cover,
		})
	}
	for _, entity := range snapshot.MonthlyChars {
		document.MonthlyChars = append(document.MonthlyChars, monthlyCharDocument{
			Month:    entity.Month,
			CharName: entity.CharName,
			Cover:    entity.Cover,
		})
	}

	for _, entity := range snapshot.Sagas {
		document.Sagas[entity.Name] = entity.WorkTitles
	}

	for _, entity := range snapshot.Characters {
		characterDoc := characterDocument{
			Title:        entity.Title,
			Cover:        entity.Cover,
			SourceID:     entity.SourceID,
			CoverOffsetY: entity.CoverOffsetY,
		}

		switch entity.Category {
		case character.CategoryHallOfFame:
			characterDoc.SortOrder = entity.SortOrder
			document.Characters = append(document.Characters, characterDoc)
		case character.CategoryLiked:
			document.LikedCharacters = append(document.LikedCharacters, characterDoc)
		case character.CategoryInterested:
			document.InterestedCharacters = append(document.InterestedCharacters, characterDoc)
		case character.CategoryDisliked:
			document.DislikedCharacters = append(document.DislikedCharacters, characterDoc)
		}
	}

	// Hall of fame order must survive serialization regardless of how the
	// store returned the rows.
	sort.SliceStable(document.Characters, func(i, j int) bool {
		left, right := document.Characters[i].SortOrder, document.Characters[j].SortOrder
		if left == nil || right == nil {
			return right == nil && left != nil
		}
		return *left < *right
	})

	if snapshot.Profile != nil {
		document.Username = snapshot.Profile.Username
		document.Bio = snapshot.Profile.Bio
		if snapshot.Profile.DecoPairs != nil {
			document.DecoPairs = snapshot.Profile.DecoPairs
		}
		if snapshot.Profile.DecoGroups != nil {
			document.DecoGroups = snapshot.Profile.DecoGroups
		}
	}

	return document
}

// ContentPath returns the archive path of one work's content file.
func ContentPath(entity *work.Work, slugged string) string {
	return contentRoot + entity.Type + "/" + slugged + ".json"
}

// BuildArchive serializes the snapshot and the fetched image assets into a
// zip archive.
//
// # Layout
//
//   - src/content/<type>/<slug>.json  : one file per work
//   - src/content/database.json       : aggregate site database
//   - public/img/...                  : downloaded cover images
//
// assets maps local image paths ("/img/covers/x.png") to their bytes;
// missing assets simply have no entry, the archive is built regardless.
func BuildArchive(snapshot *Snapshot, slugByTitle map[string]string, assets map[string][]byte) ([]byte, error) {
	buffer := &bytes.Buffer{}
	archive := zip.NewWriter(buffer)

	writeJSON := func(path string, payload any) error {
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("backup_archive_encode_failed %s: %w", path, err)
		}
		file, err := archive.Create(path)
		if err != nil {
			return fmt.Errorf("backup_archive_entry_failed %s: %w", path, err)
		}
		_, err = file.Write(encoded)
		return err
	}

	for _, entity := range snapshot.Works {
		document := workDocument{
			Title:        entity.Title,
			Cover:        entity.Cover,
			Year:         entity.Year,
			Type:         entity.Type,
			Status:       entity.Status,
			Score:        entity.Score,
			StartDate:    entity.StartDate,
			FinishDate:   entity.FinishDate,
			CoverOffsetY: entity.CoverOffsetY,
			PrivateNotes: entity.PrivateNotes,
			UpdatedAt:    entity.UpdatedAt,
		}
		if err := writeJSON(ContentPath(entity, slugByTitle[entity.Title]), document); err != nil {
			return nil, err
		}
	}

	if err := writeJSON(contentRoot+"database.json", buildDatabaseDocument(snapshot)); err != nil {
		return nil, err
	}

	// Deterministic asset order keeps archive diffs stable between runs.
	paths := make([]string, 0, len(assets))
	for path := range assets {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		file, err := archive.Create(publicRoot + path)
		if err != nil {
			return nil, fmt.Errorf("backup_archive_asset_failed %s: %w", path, err)
		}
		if _, err := file.Write(assets[path]); err != nil {
			return nil, fmt.Errorf("backup_archive_asset_write_failed %s: %w", path, err)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("backup_archive_close_failed: %w", err)
	}

	return buffer.Bytes(), nil
}
