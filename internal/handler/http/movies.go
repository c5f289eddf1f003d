package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

const movieIDParam = "movieID"

// movieIDFromPath parses the {movieID} path segment.
func movieIDFromPath(r *http.Request) (int64, error) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, movieIDParam), 10, 64)
	if err != nil || movieID <= 0 {
		return 0, ErrInvalidMovieIDParam
	}
	return movieID, nil
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.CatalogService.GetMovie(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.CatalogService.SearchMovies(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(movies) == 0 {
		utils.WriteError(w, http.StatusNotFound, "no movies found", nil)
		return
	}

	_, _ = utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) popularMovies(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.CatalogService.PopularMovies(r.Context()), http.StatusOK)
}
