// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package slug derives filesystem-safe identifiers from display titles.
//
// # Usage
//
// Slugs name the per-work JSON documents and downloaded cover images inside
// backup archives (e.g., "Final Fantasy VII" → "final-fantasy-vii.json").
// The same title must always yield the same slug so that re-exports overwrite
// rather than duplicate files.
package slug

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	// stripped removes everything outside the keep-list. The °, ' and ’
	// characters are preserved for filename compatibility with archives
	// produced by earlier versions of the site.
	stripped = regexp.MustCompile(`[^a-z0-9\s\-°'’]+`)
	// spaceRun collapses internal whitespace runs into a single hyphen.
	spaceRun = regexp.MustCompile(`\s+`)
	// hyphenRun collapses consecutive hyphens into one.
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Make converts a display title into a stable, filesystem-safe slug.
//
// # Transformation Pipeline
//
// 1. Lowercase.
// 2. Strip all characters outside [a-z0-9, whitespace, hyphen, °'’].
// 3. Trim surrounding whitespace.
// 4. Collapse whitespace runs to single hyphens.
// 5. Collapse repeated hyphens.
//
// An empty title yields a timestamped placeholder so two untitled records
// never collide on the same filename.
func Make(title string) string {
	if title == "" {
		return fmt.Sprintf("unknown-%d", time.Now().UnixMilli())
	}

	s := strings.ToLower(title)
	s = stripped.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = spaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")

	return s
}

// imageExtensions is the set of cover file extensions stored as-is.
// Anything else (or an unparseable URL) falls back to ".jpg".
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// Ext derives the image file extension from a remote cover URL.
//
// Only the URL's path component is inspected; query strings and fragments
// never contribute an extension.
func Ext(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}

	path := parsed.Path
	lastDot := strings.LastIndex(path, ".")
	if lastDot == -1 {
		return ".jpg"
	}

	ext := path[lastDot:]
	if imageExtensions[strings.ToLower(ext)] {
		return ext
	}
	return ".jpg"
}
