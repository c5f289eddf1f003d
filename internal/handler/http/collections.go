package http

import (
	"net/http"

	"github.com/MKhiriev/film-vault/internal/service"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

// collectionRouter serves one per-user collection. It must be mounted behind
// withAuth.
func (h *Handler) collectionRouter(collection service.CollectionService) chi.Router {
	c := &collectionHandler{collection: collection, catalog: h.services.CatalogService}

	router := chi.NewRouter()
	router.Get("/", c.list)
	router.Get("/details", c.details)
	router.Post("/{movieID}", c.add)
	router.Delete("/{movieID}", c.remove)

	return router
}

type collectionHandler struct {
	collection service.CollectionService
	catalog    service.CatalogService
}

func (c *collectionHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids, err := c.collection.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, ids, http.StatusOK)
}

// details resolves the collection's movie ids against the catalog. Ids the
// catalog cannot resolve are left out.
func (c *collectionHandler) details(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids, err := c.collection.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, c.catalog.GetMovies(r.Context(), ids), http.StatusOK)
}

func (c *collectionHandler) add(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = c.collection.Add(r.Context(), userID, movieID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *collectionHandler) remove(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = c.collection.Remove(r.Context(), userID, movieID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
