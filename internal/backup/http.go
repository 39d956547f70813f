// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the backup HTTP endpoints.
//
// These routes run far longer than regular API calls, so the server mounts
// them behind an extended timeout.
type Handler struct {
	backupService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{backupService: service}
}

// Routes returns a [chi.Router] configured with backup routes.
//
// # Endpoints
//   - GET /sync   : Build and download the static site content archive.
//   - GET /export : Download the raw JSON dump of every table.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/sync", handler.sync)
	router.Get("/export", handler.export)

	return router
}

// sync handles GET /api/v1/backup/sync requests.
//
// With ?persist=1 (or persist=true) the localized cover paths are written
// back to the catalog, so subsequent archives skip the already-downloaded
// images.
func (handler *Handler) sync(writer http.ResponseWriter, request *http.Request) {
	flag := request.URL.Query().Get("persist")
	persist := flag == "1" || flag == "true"

	archive, filename, err := handler.backupService.BuildSiteArchive(request.Context(), persist)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "application/zip")
	writer.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(archive)
}

// export handles GET /api/v1/backup/export requests.
func (handler *Handler) export(writer http.ResponseWriter, request *http.Request) {
	document, filename, err := handler.backupService.Export(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writer.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(document)
}
