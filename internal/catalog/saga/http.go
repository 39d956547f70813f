// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package saga

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the saga HTTP endpoints.
type Handler struct {
	sagaService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{sagaService: service}
}

// Routes returns a [chi.Router] configured with saga routes.
//
// # Endpoints
//   - GET    /        : List all sagas.
//   - PUT    /        : Create or replace a saga by name.
//   - DELETE /{name}  : Delete a saga.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/", handler.put)
	router.Delete("/{name}", handler.remove)

	return router
}

// list handles GET /api/v1/sagas requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	sagas, err := handler.sagaService.ListSagas(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sagas)
}

// putRequest represents the JSON payload for creating or replacing a saga.
type putRequest struct {
	Name       string   `json:"name"`
	WorkTitles []string `json:"work_titles"`
}

// put handles PUT /api/v1/sagas requests.
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	var input putRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.sagaService.PutSaga(request.Context(), input.Name, input.WorkTitles)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// remove handles DELETE /api/v1/sagas/{name} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	if err := handler.sagaService.DeleteSaga(request.Context(), name); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
