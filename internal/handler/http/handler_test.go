package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/mock"
	"github.com/MKhiriev/film-vault/internal/service"
	"github.com/MKhiriev/film-vault/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "01890a5d-ac96-774b-bcce-b302099a8057"
	testToken  = "valid-token"
)

type testMocks struct {
	auth      *mock.MockAuthService
	token     *mock.MockTokenService
	user      *mock.MockUserService
	catalog   *mock.MockCatalogService
	appInfo   *mock.MockAppInfoService
	saved     *mock.MockCollectionService
	watchlist *mock.MockCollectionService
}

// newTestHandler is enough for middleware that only needs a logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		auth:      mock.NewMockAuthService(ctrl),
		token:     mock.NewMockTokenService(ctrl),
		user:      mock.NewMockUserService(ctrl),
		catalog:   mock.NewMockCatalogService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		saved:     mock.NewMockCollectionService(ctrl),
		watchlist: mock.NewMockCollectionService(ctrl),
	}

	services := &service.Services{
		AuthService:        m.auth,
		TokenService:       m.token,
		UserService:        m.user,
		CatalogService:     m.catalog,
		AppInfoService:     m.appInfo,
		SavedMoviesService: m.saved,
		WatchlistService:   m.watchlist,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// newTestRouter builds the full router over mocked services.
func newTestRouter(t *testing.T) (http.Handler, *testMocks) {
	t.Helper()
	h, m := newMockedHandler(t, config.Server{})
	return h.Init(), m
}

// expectAuthorized makes testToken resolve to testUserID.
func (m *testMocks) expectAuthorized() {
	m.token.EXPECT().
		Validate(gomock.Any(), testToken).
		Return(models.Identity{UserID: testUserID, Name: "alice", Email: "alice@x.com"}, nil).
		AnyTimes()
}

func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}
