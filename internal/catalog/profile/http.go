// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the profile configuration HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] configured with profile routes.
//
// # Endpoints
//   - GET / : Read the site configuration.
//   - PUT / : Replace the site configuration.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.Put("/", handler.put)

	return router
}

// get handles GET /api/v1/profile requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entity, err := handler.profileService.GetProfile(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// put handles PUT /api/v1/profile requests.
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	var input Profile
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.profileService.PutProfile(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}
