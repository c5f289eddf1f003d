package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeToken(w, r, token)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeToken(w, r, token)
}

// writeToken answers with the token in both the body and the Authorization
// header.
func writeToken(w http.ResponseWriter, r *http.Request, token models.Token) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing token response failed")
	}
}
