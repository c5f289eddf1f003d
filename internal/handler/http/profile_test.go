package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/internal/validators"
	"github.com/MKhiriev/film-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testProfile() models.User {
	return models.User{
		UserID:       testUserID,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "c2VjcmV0",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("own profile without password", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().GetProfile(gomock.Any(), testUserID).Return(testProfile(), nil)

		rr := doRequest(t, router, http.MethodGet, "/api/users/profile", "", testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":"alice@x.com"`)
		assert.NotContains(t, rr.Body.String(), "c2VjcmV0")
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("account gone", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().GetProfile(gomock.Any(), testUserID).Return(models.User{}, store.ErrNoUserWasFound)

		rr := doRequest(t, router, http.MethodGet, "/api/users/profile", "", testToken)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "user not found", decodeError(t, rr).Message)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("success issues a fresh token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()

		updated := testProfile()
		updated.Username = "alice2"
		m.user.EXPECT().
			UpdateProfile(gomock.Any(), testUserID, models.UpdateProfileRequest{Username: "alice2", Email: "alice@x.com"}).
			Return(updated, nil)
		m.token.EXPECT().Issue(gomock.Any(), updated).Return(models.Token{SignedString: "fresh"}, nil)

		rr := doRequest(t, router, http.MethodPut, "/api/users/profile", `{"username":"alice2","email":"alice@x.com"}`, testToken)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp models.ProfileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "fresh", resp.Token)
		assert.Equal(t, "alice2", resp.User.Username)
		assert.Equal(t, "Bearer fresh", rr.Header().Get("Authorization"))
	})

	t.Run("email taken by another account", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			Return(models.User{}, fmt.Errorf("update: %w", store.ErrEmailAlreadyExists))

		rr := doRequest(t, router, http.MethodPut, "/api/users/profile", `{"username":"alice","email":"bob@x.com"}`, testToken)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("invalid fields", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			Return(models.User{}, validators.ValidationErrors{validators.FieldEmail: "email is invalid"})

		rr := doRequest(t, router, http.MethodPut, "/api/users/profile", `{"username":"alice","email":"nope"}`, testToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, map[string]string{validators.FieldEmail: "email is invalid"}, decodeError(t, rr).Errors)
	})

	t.Run("unknown JSON field is rejected", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()

		rr := doRequest(t, router, http.MethodPut, "/api/users/profile", `{"id":"someone-else"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid JSON was passed", decodeError(t, rr).Message)
	})

	t.Run("token issue failure", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).Return(testProfile(), nil)
		m.token.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("sign failed"))

		rr := doRequest(t, router, http.MethodPut, "/api/users/profile", `{"username":"alice","email":"alice@x.com"}`, testToken)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDeleteProfile(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().DeleteAccount(gomock.Any(), testUserID).Return(nil)

		rr := doRequest(t, router, http.MethodDelete, "/api/users/profile", "", testToken)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("already gone", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.user.EXPECT().DeleteAccount(gomock.Any(), testUserID).Return(store.ErrNoUserWasFound)

		rr := doRequest(t, router, http.MethodDelete, "/api/users/profile", "", testToken)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
