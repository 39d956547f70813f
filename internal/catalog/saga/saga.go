// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package saga groups related works (sequels, spin-offs) under a named
// series and keeps the member list in release order.
package saga

import (
	"context"
	"time"
)

// Saga is a named series of works. Identity is the name itself.
//
// WorkTitles is kept sorted by sequence number, descending, so the newest
// numbered entry comes first. Titles without a detectable number sort after
// the numbered ones.
type Saga struct {
	Name       string    `json:"name"`
	WorkTitles []string  `json:"work_titles"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Contains reports whether the saga already lists the given title.
func (s *Saga) Contains(title string) bool {
	for _, existing := range s.WorkTitles {
		if existing == title {
			return true
		}
	}
	return false
}

// Repository defines the persistence contract for sagas.
type Repository interface {
	// ListSagas returns every saga ordered by name.
	ListSagas(ctx context.Context) ([]*Saga, error)

	// GetSaga retrieves a single saga by name.
	GetSaga(ctx context.Context, name string) (*Saga, error)

	// UpsertSaga inserts the saga or replaces the member list of the
	// existing row with the same name.
	UpsertSaga(ctx context.Context, entity *Saga) error

	// DeleteSaga removes a saga row by name.
	DeleteSaga(ctx context.Context, name string) error
}
