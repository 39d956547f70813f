// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package work

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
	"github.com/adriaferrer/kiroku/pkg/pagination"
)

// Handler implements the work catalog HTTP endpoints.
type Handler struct {
	workService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{workService: service}
}

// Routes returns a [chi.Router] configured with work catalog routes.
//
// # Endpoints
//   - GET    /          : Paginated listing with type/query filters.
//   - GET    /{id}      : Single work by ID.
//   - PUT    /          : Create or update a work keyed on its title.
//   - DELETE /{id}      : Delete a work and its dependent rows.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Put("/", handler.save)
	router.Delete("/{id}", handler.remove)

	return router
}

// list handles GET /api/v1/works requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Type:  request.URL.Query().Get("type"),
		Query: request.URL.Query().Get("q"),
	}

	works, metadata, err := handler.workService.ListWorks(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, works, metadata)
}

// get handles GET /api/v1/works/{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid work ID"))
		return
	}

	entity, err := handler.workService.GetWork(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// saveRequest represents the JSON payload for creating or updating a work.
type saveRequest struct {
	Title        string `json:"title"`
	Cover        string `json:"cover"`
	Year         *int   `json:"year"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Score        int    `json:"score"`
	StartDate    string `json:"startDate"`
	FinishDate   string `json:"finishDate"`
	CoverOffsetY int    `json:"coverOffsetY"`
	PrivateNotes string `json:"privateNotes"`
}

// save handles PUT /api/v1/works requests.
//
// The operation is an upsert keyed on the title: saving an existing title
// updates the stored entry in place.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.workService.SaveWork(request.Context(), SaveInput{
		Title:        input.Title,
		Cover:        input.Cover,
		Year:         input.Year,
		Type:         input.Type,
		Status:       input.Status,
		Score:        input.Score,
		StartDate:    input.StartDate,
		FinishDate:   input.FinishDate,
		CoverOffsetY: input.CoverOffsetY,
		PrivateNotes: input.PrivateNotes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// remove handles DELETE /api/v1/works/{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid work ID"))
		return
	}

	if err := handler.workService.DeleteWork(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
