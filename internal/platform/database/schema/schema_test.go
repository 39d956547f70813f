// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestColumns_MatchScanOrder verifies that each table's canonical column list
stays aligned with the order its repository scan helpers expect.
*/
func TestColumns_MatchScanOrder(t *testing.T) {
	assert.Equal(t, []string{
		"id", "title", "cover", "year", "type", "status", "score",
		"start_date", "finish_date", "cover_offset_y", "private_notes",
		"created_at", "updated_at",
	}, Works.Columns())

	assert.Equal(t, []string{
		"id", "title", "cover", "source_id", "cover_offset_y",
		"category", "sort_order", "created_at",
	}, Characters.Columns())

	assert.Equal(t, []string{
		"id", "title", "artist", "album", "cover", "year", "score",
		"cover_offset_y", "created_at",
	}, Music.Columns())
}
