// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package pick

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the monthly pick HTTP endpoints.
type Handler struct {
	pickService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{pickService: service}
}

// Routes returns a [chi.Router] configured with monthly pick routes.
//
// # Endpoints
//   - GET    /               : List work picks, newest first.
//   - PUT    /               : Set the work pick of a month.
//   - DELETE /{month}        : Remove a month's work pick.
//   - GET    /chars          : List character picks, newest first.
//   - PUT    /chars          : Set the character pick of a month.
//   - DELETE /chars/{month}  : Remove a month's character pick.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/", handler.put)
	router.Delete("/{month}", handler.remove)

	router.Get("/chars", handler.listChars)
	router.Put("/chars", handler.putChar)
	router.Delete("/chars/{month}", handler.removeChar)

	return router
}

// list handles GET /api/v1/picks requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	picks, err := handler.pickService.ListPicks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, picks)
}

// putRequest represents the JSON payload for setting a month's work pick.
type putRequest struct {
	Month     string `json:"month"`
	WorkTitle string `json:"work_title"`
	Cover     string `json:"cover"`
}

// put handles PUT /api/v1/picks requests.
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	var input putRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.pickService.PutPick(request.Context(), input.Month, input.WorkTitle, input.Cover)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// remove handles DELETE /api/v1/picks/{month} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	month := requestutil.Param(request, "month")

	if err := handler.pickService.DeletePick(request.Context(), month); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// listChars handles GET /api/v1/picks/chars requests.
func (handler *Handler) listChars(writer http.ResponseWriter, request *http.Request) {
	picks, err := handler.pickService.ListCharPicks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, picks)
}

// putCharRequest represents the JSON payload for setting a month's character pick.
type putCharRequest struct {
	Month    string `json:"month"`
	CharName string `json:"char_name"`
	Cover    string `json:"cover"`
}

// putChar handles PUT /api/v1/picks/chars requests.
func (handler *Handler) putChar(writer http.ResponseWriter, request *http.Request) {
	var input putCharRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.pickService.PutCharPick(request.Context(), input.Month, input.CharName, input.Cover)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// removeChar handles DELETE /api/v1/picks/chars/{month} requests.
func (handler *Handler) removeChar(writer http.ResponseWriter, request *http.Request) {
	month := requestutil.Param(request, "month")

	if err := handler.pickService.DeleteCharPick(request.Context(), month); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
