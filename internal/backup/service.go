// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adriaferrer/kiroku/pkg/slug"
)

// downloadConcurrency bounds the parallel cover fetches per archive build.
const downloadConcurrency = 8

// AssetFetcher retrieves one remote image.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher implements [AssetFetcher] over plain HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher constructs an [HTTPFetcher] with a sane per-image timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch downloads one image. Non-2xx responses are errors.
func (fetcher *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("backup_fetch_request_failed: %w", err)
	}

	response, err := fetcher.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("backup_fetch_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("backup_fetch_failed: status %d", response.StatusCode)
	}

	return io.ReadAll(response.Body)
}

// Service orchestrates the export pipeline.
type Service struct {
	store   Store
	fetcher AssetFetcher
	logger  *slog.Logger
}

// NewService constructs a new backup [Service].
func NewService(store Store, fetcher AssetFetcher, logger *slog.Logger) *Service {
	return &Service{store: store, fetcher: fetcher, logger: logger}
}

// snapshot reads every table concurrently. Any single read failure aborts
// the whole snapshot: a partial archive is worse than no archive.
func (service *Service) snapshot(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		snapshot.Works, err = service.store.Works(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.Characters, err = service.store.Characters(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.Sagas, err = service.store.Sagas(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.Favorites, err = service.store.Favorites(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.MonthlyPicks, err = service.store.MonthlyPicks(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.MonthlyChars, err = service.store.MonthlyChars(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.Albums, err = service.store.Albums(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snapshot.Profile, err = service.store.Profile(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("backup_snapshot_failed: %w", err)
	}

	return snapshot, nil
}

// download fetches every planned cover concurrently.
//
// Failed downloads are logged and skipped; the archive ships without those
// images rather than failing the whole build.
func (service *Service) download(ctx context.Context, downloads []Download) map[string][]byte {
	assets := make(map[string][]byte, len(downloads))
	var assetsMu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(downloadConcurrency)

	for _, job := range downloads {
		job := job
		group.Go(func() error {
			data, err := service.fetcher.Fetch(groupCtx, job.URL)
			if err != nil {
				service.logger.WarnContext(groupCtx, "backup_image_skipped",
					slog.String("url", job.URL),
					slog.String("error", err.Error()),
				)
				return nil
			}

			assetsMu.Lock()
			assets[job.LocalPath] = data
			assetsMu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors, so Wait only orders completion.
	_ = group.Wait()

	return assets
}

// persist runs the cover write-backs concurrently. Each write-back is
// independent and best effort; a failure leaves that row remote and is
// retried implicitly by the next export.
func (service *Service) persist(ctx context.Context, writeBacks []WriteBack, assets map[string][]byte) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(downloadConcurrency)

	for _, writeBack := range writeBacks {
		// Only repoint rows whose image actually made it into the archive.
		if _, fetched := assets[writeBack.LocalPath]; !fetched {
			continue
		}

		writeBack := writeBack
		group.Go(func() error {
			if err := service.store.ApplyCover(groupCtx, writeBack); err != nil {
				service.logger.WarnContext(groupCtx, "backup_writeback_failed",
					slog.String("table", writeBack.Table),
					slog.String("key", writeBack.Key),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}

	// Goroutines never return errors, so Wait only orders completion.
	_ = group.Wait()
}

// BuildSiteArchive runs the full pipeline and returns the zip bytes plus
// the dated download filename.
//
// # Flow
//
//  1. Snapshot every table (all or nothing).
//  2. Rewrite remote covers to local image paths.
//  3. Download the planned covers (best effort).
//  4. Optionally persist the localized paths back to the catalog.
//  5. Assemble the archive.
func (service *Service) BuildSiteArchive(ctx context.Context, persist bool) ([]byte, string, error) {
	snapshot, err := service.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	// Slugs are computed before the rewrite mutates anything so content
	// filenames and image names always agree.
	slugByTitle := make(map[string]string, len(snapshot.Works))
	for _, entity := range snapshot.Works {
		slugByTitle[entity.Title] = slug.Make(entity.Title)
	}

	plan := Rewrite(snapshot)
	assets := service.download(ctx, plan.Downloads)

	service.logger.InfoContext(ctx, "backup_archive_assembling",
		slog.Int("works", len(snapshot.Works)),
		slog.Int("downloads_planned", len(plan.Downloads)),
		slog.Int("downloads_fetched", len(assets)),
		slog.Bool("persist", persist),
	)

	if persist {
		service.persist(ctx, plan.WriteBacks, assets)
	}

	archive, err := BuildArchive(snapshot, slugByTitle, assets)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("kiroku-backup-%s.zip", time.Now().Format("2006-01-02"))
	return archive, filename, nil
}

// ExportDocument is the raw JSON dump of every table.
type ExportDocument struct {
	Works        any `json:"works"`
	Characters   any `json:"characters"`
	Sagas        any `json:"sagas"`
	Favorites    any `json:"favorites"`
	MonthlyPicks any `json:"monthlyPicks"`
	MonthlyChars any `json:"monthlyChars"`
	Music        any `json:"music"`
	Config       any `json:"config"`
}

// Export snapshots every table and returns it as one JSON document plus
// the dated download filename. Unlike the archive, the dump is verbatim:
// no cover rewriting, no image fetching.
func (service *Service) Export(ctx context.Context) (*ExportDocument, string, error) {
	snapshot, err := service.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	document := &ExportDocument{
		Works:        snapshot.Works,
		Characters:   snapshot.Characters,
		Sagas:        snapshot.Sagas,
		Favorites:    snapshot.Favorites,
		MonthlyPicks: snapshot.MonthlyPicks,
		MonthlyChars: snapshot.MonthlyChars,
		Music:        snapshot.Albums,
		Config:       snapshot.Profile,
	}

	filename := fmt.Sprintf("kiroku-export-%s.json", time.Now().Format("2006-01-02"))
	return document, filename, nil
}
