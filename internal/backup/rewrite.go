// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"strconv"
	"strings"

	"github.com/adriaferrer/kiroku/pkg/slug"
)

// Tables a cover write-back can target.
const (
	TableWorks        = "works"
	TableCharacters   = "characters"
	TableFavorites    = "favorites"
	TableMonthlyPicks = "monthly_picks"
	TableMonthlyChars = "monthly_chars"
)

// Image directories inside the static site.
const (
	coversDir = "/img/covers/"
	charaDir  = "/img/chara/"
)

// Download is one remote cover to fetch and store under its local path.
type Download struct {
	URL       string
	LocalPath string
}

// WriteBack records that one source row's cover should be repointed at a
// localized path once the image has been fetched.
type WriteBack struct {
	Table     string
	Key       string
	LocalPath string
}

// Plan is the output of [Rewrite]: the deduplicated download jobs plus the
// write-backs to run after a successful archive build.
type Plan struct {
	Downloads  []Download
	WriteBacks []WriteBack
}

// planner accumulates the plan while deduplicating by source URL.
type planner struct {
	plan      Plan
	pathByURL map[string]string
}

// localize maps a remote cover URL to its local path, reusing the path of
// an earlier claim on the same URL. It reports whether a new download job
// was created.
func (p *planner) localize(remoteURL, localPath string) string {
	if existing, seen := p.pathByURL[remoteURL]; seen {
		return existing
	}

	p.pathByURL[remoteURL] = localPath
	p.plan.Downloads = append(p.plan.Downloads, Download{URL: remoteURL, LocalPath: localPath})
	return localPath
}

// record registers a write-back for one localized cover.
func (p *planner) record(table, key, localPath string) {
	p.plan.WriteBacks = append(p.plan.WriteBacks, WriteBack{Table: table, Key: key, LocalPath: localPath})
}

// isRemote reports whether a cover still points at an external host.
// Localized covers ("/img/...") fail this check, which is what makes the
// whole rewrite idempotent.
func isRemote(cover string) bool {
	return strings.HasPrefix(cover, "http")
}

// Rewrite walks the snapshot and replaces every remote cover with a local
// image path.
//
// # Naming
//
//   - Works:           /img/covers/<slug(title)><ext>
//   - Characters:      /img/chara/<slug(title)><ext>
//   - Saga favorites:  /img/covers/<slug("saga-" + title)><ext>
//   - Monthly picks:   /img/covers/<slug("monthly-pick-" + month)><ext>
//   - Monthly chars:   /img/chara/<slug("monthly-char-" + month)><ext>
//
// # Deduplication
//
// Two records sharing a remote URL produce exactly one download job; the
// first record to claim the URL decides the local path and later records
// share it.
//
// The snapshot is mutated in place so the archive builder sees the final
// local paths. Running Rewrite on an already localized snapshot yields an
// empty plan.
func Rewrite(snapshot *Snapshot) *Plan {
	p := &planner{pathByURL: map[string]string{}}

	for _, entity := range snapshot.Works {
		if !isRemote(entity.Cover) {
			continue
		}
		localPath := p.localize(entity.Cover, coversDir+slug.Make(entity.Title)+slug.Ext(entity.Cover))
		entity.Cover = localPath
		p.record(TableWorks, entity.Title, localPath)
	}

	for _, entity := range snapshot.Characters {
		if !isRemote(entity.Cover) {
			continue
		}
		localPath := p.localize(entity.Cover, charaDir+slug.Make(entity.Title)+slug.Ext(entity.Cover))
		entity.Cover = localPath
		p.record(TableCharacters, strconv.Itoa(entity.ID), localPath)
	}

	for _, entity := range snapshot.Favorites {
		if !entity.IsSaga || entity.Cover == nil || !isRemote(*entity.Cover) {
			continue
		}
		localPath := p.localize(*entity.Cover, coversDir+slug.Make("saga-"+entity.Title)+slug.Ext(*entity.Cover))
		entity.Cover = &localPath
		p.record(TableFavorites, strconv.Itoa(entity.SortOrder), localPath)
	}

	for _, entity := range snapshot.MonthlyPicks {
		if !isRemote(entity.Cover) {
			continue
		}
		localPath := p.localize(entity.Cover, coversDir+slug.Make("monthly-pick-"+entity.Month)+slug.Ext(entity.Cover))
		entity.Cover = localPath
		p.record(TableMonthlyPicks, entity.Month, localPath)
	}

	for _, entity := range snapshot.MonthlyChars {
		if !isRemote(entity.Cover) {
			continue
		}
		localPath := p.localize(entity.Cover, charaDir+slug.Make("monthly-char-"+entity.Month)+slug.Ext(entity.Cover))
		entity.Cover = localPath
		p.record(TableMonthlyChars, entity.Month, localPath)
	}

	return &p.plan
}
