package http

import (
	"net/http"

	"github.com/MKhiriev/film-vault/internal/utils"
)

const liveMessage = "FilmVault API is live!"

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(liveMessage))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serverVersion))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
}
