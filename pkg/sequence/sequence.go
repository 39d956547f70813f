// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package sequence extracts ordering keys from sequel titles.
//
// # Usage
//
// Saga member lists are kept sorted newest-entry-first ("Persona 5" before
// "Persona 4"). The ordering key is the number embedded in the title, either
// as arabic digits ("Final Fantasy 7") or as a roman numeral
// ("Final Fantasy VII").
package sequence

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	// digitToken matches a run of digits preceded by a space.
	digitToken = regexp.MustCompile(`\s(\d+)`)
	// romanToken matches a roman-numeral word preceded by a space.
	romanToken = regexp.MustCompile(`(?i)\s([mdclxvi]+)\b`)
)

// romanValues maps roman symbols to their integer values.
var romanValues = map[byte]int{
	'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000,
}

// Number extracts the sequence number embedded in a title.
//
// Arabic digits take precedence over roman numerals. The token must be
// preceded by a space, so "Persona5" and a leading "5" do not count.
// Titles without an extractable number report ok = false.
func Number(title string) (n int, ok bool) {
	if match := digitToken.FindStringSubmatch(title); match != nil {
		parsed, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	if match := romanToken.FindStringSubmatch(title); match != nil {
		return romanToInt(match[1])
	}

	return 0, false
}

// romanToInt converts a roman-numeral token using subtractive notation.
//
// A lower-value symbol before a higher-value one forms a subtractive pair
// (IV = 4, CM = 900). Values above 3999 and unknown symbols are rejected.
func romanToInt(token string) (int, bool) {
	token = strings.ToLower(token)
	total := 0

	for i := 0; i < len(token); {
		value, known := romanValues[token[i]]
		if !known {
			return 0, false
		}

		if i+1 < len(token) {
			next, knownNext := romanValues[token[i+1]]
			if !knownNext {
				return 0, false
			}
			if value < next {
				total += next - value
				i += 2
				continue
			}
		}

		total += value
		i++
	}

	if total > 3999 {
		return 0, false
	}
	return total, true
}

// collator performs locale-aware string comparison for un-numbered titles.
// collate.Collator carries an internal buffer, so access is serialized.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.Loose)
)

// Compare orders two titles for saga listings.
//
// # Ordering Rules
//
//  1. Both numbered: descending by number (newest entry first).
//  2. Only one numbered: the numbered title sorts first.
//  3. Neither numbered: locale-aware lexicographic order.
//
// The result follows the usual contract: negative when a sorts before b.
func Compare(a, b string) int {
	na, okA := Number(a)
	nb, okB := Number(b)

	switch {
	case okA && okB:
		switch {
		case na > nb:
			return -1
		case na < nb:
			return 1
		default:
			return 0
		}
	case okA:
		return -1
	case okB:
		return 1
	}

	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Sort orders a saga member list in place using [Compare].
func Sort(titles []string) {
	slices.SortStableFunc(titles, Compare)
}
