// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adriaferrer/kiroku/pkg/slug"
)

/*
TestMake verifies the slug transformation pipeline against representative titles.
*/
func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Elden Ring", "elden-ring"},
		{"numbered_sequel", "Final Fantasy 7", "final-fantasy-7"},
		{"mixed_case", "NieR: Automata", "nier-automata"},
		{"whitespace_runs", "  Persona   5  ", "persona-5"},
		{"kept_punctuation", "Shin Megami Tensei ’95", "shin-megami-tensei-’95"},
		{"degree_sign", "Baten Kaitos °", "baten-kaitos-°"},
		{"stripped_symbols", "Fate/stay night [Réalta]", "fatestay-night-alta"},
		{"hyphen_collapse", "Ni no Kuni --- II", "ni-no-kuni-ii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.title))
		})
	}
}

/*
TestMake_Deterministic verifies that titles differing only by case or
whitespace runs collapse to the same slug.
*/
func TestMake_Deterministic(t *testing.T) {
	assert.Equal(t, slug.Make("Final Fantasy VII"), slug.Make("final   fantasy vii"))
	assert.Equal(t, slug.Make("Persona 5"), slug.Make("PERSONA 5"))
}

/*
TestMake_EmptyTitle verifies that empty titles produce a timestamped
placeholder instead of an empty filename.
*/
func TestMake_EmptyTitle(t *testing.T) {
	got := slug.Make("")
	assert.True(t, strings.HasPrefix(got, "unknown-"))
	assert.Greater(t, len(got), len("unknown-"))
}

/*
TestExt verifies cover extension derivation from remote URLs.
*/
func TestExt(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"png", "https://cdn.example.com/covers/elden-ring.png", ".png"},
		{"jpeg", "https://cdn.example.com/a.jpeg", ".jpeg"},
		{"webp", "https://cdn.example.com/a.webp", ".webp"},
		{"gif", "https://cdn.example.com/a.gif", ".gif"},
		{"uppercase_kept_lower_checked", "https://cdn.example.com/a.PNG", ".PNG"},
		{"unknown_extension", "https://cdn.example.com/a.bmp", ".jpg"},
		{"no_extension", "https://cdn.example.com/cover", ".jpg"},
		{"query_string_ignored", "https://cdn.example.com/cover?fmt=.png", ".jpg"},
		{"unparseable", "http://%zz", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Ext(tt.url))
		})
	}
}
