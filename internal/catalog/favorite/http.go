// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the favorites shelf HTTP endpoints.
type Handler struct {
	favoriteService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{favoriteService: service}
}

// Routes returns a [chi.Router] configured with favorites routes.
//
// # Endpoints
//   - GET /  : List the shelf in rank order.
//   - PUT /  : Replace the whole shelf.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/", handler.replace)

	return router
}

// list handles GET /api/v1/favorites requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	favorites, err := handler.favoriteService.ListFavorites(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, favorites)
}

// entryRequest is one shelf slot in the replace payload. Rank is implied by
// the position in the array.
type entryRequest struct {
	IsSaga bool    `json:"isSaga"`
	Title  string  `json:"title"`
	Cover  *string `json:"cover"`
}

// replace handles PUT /api/v1/favorites requests.
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	var input []entryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries := make([]EntryInput, 0, len(input))
	for _, item := range input {
		entries = append(entries, EntryInput{
			IsSaga: item.IsSaga,
			Title:  item.Title,
			Cover:  item.Cover,
		})
	}

	favorites, err := handler.favoriteService.ReplaceFavorites(request.Context(), entries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, favorites)
}
