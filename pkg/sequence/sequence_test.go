// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adriaferrer/kiroku/pkg/sequence"
)

/*
TestNumber covers arabic and roman extraction plus the no-match cases.
*/
func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		want   int
		wantOK bool
	}{
		{"arabic", "Final Fantasy 7", 7, true},
		{"arabic_mid_title", "Persona 4 Golden", 4, true},
		{"roman", "Final Fantasy VII", 7, true},
		{"roman_lowercase", "final fantasy vii", 7, true},
		{"roman_subtractive", "Dragon Quest IX", 9, true},
		{"roman_large", "Super Sentai MMXIV", 2014, true},
		{"arabic_wins_over_roman", "Final Fantasy 10 X", 10, true},
		{"no_number", "Final Fantasy", 0, false},
		{"digits_without_space", "Persona5", 0, false},
		{"roman_without_space", "FFVII", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sequence.Number(tt.title)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

/*
TestCompare verifies the descending-by-number contract.
*/
func TestCompare(t *testing.T) {
	// Numbered titles: highest number first.
	assert.Negative(t, sequence.Compare("Persona 5", "Persona 4"))
	assert.Positive(t, sequence.Compare("Persona 3", "Persona 4"))
	assert.Zero(t, sequence.Compare("Persona 4", "Mother 4"))

	// Numbered sorts before un-numbered.
	assert.Negative(t, sequence.Compare("Yakuza 3", "Yakuza Kiwami"))
	assert.Positive(t, sequence.Compare("Yakuza Kiwami", "Yakuza 3"))

	// Neither numbered: lexicographic fallback.
	assert.Negative(t, sequence.Compare("Bayonetta", "Okami"))
}

/*
TestSort verifies that a shuffled sequel list ends up in descending order.
*/
func TestSort(t *testing.T) {
	titles := []string{"Persona 3", "Persona 5", "Persona 4"}
	sequence.Sort(titles)
	assert.Equal(t, []string{"Persona 5", "Persona 4", "Persona 3"}, titles)

	mixed := []string{"Kingdom Hearts", "Kingdom Hearts II", "Kingdom Hearts III"}
	sequence.Sort(mixed)
	assert.Equal(t, []string{"Kingdom Hearts III", "Kingdom Hearts II", "Kingdom Hearts"}, mixed)
}
