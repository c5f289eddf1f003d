package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/models"
)

// currentUserID returns the subject of the validated token. Handlers never
// read a user id from the path, query or body.
func currentUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoIdentity
	}
	return userID, nil
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateProfileRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// the old token carries stale name and e-mail claims
	token, err := h.services.TokenService.Issue(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.ProfileResponse{User: user, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
