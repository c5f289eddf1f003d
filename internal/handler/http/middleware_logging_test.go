package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/movies/popular",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/movies/popular"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/api/watchlist/550",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "GET 404",
			method:          http.MethodGet,
			path:            "/api/movies/search?query=zzzz",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: `{"message":"no movies found"}`,
			checkLogContains: []string{
				`"uri":"/api/movies/search?query=zzzz"`,
				`"status":404`,
			},
		},
		{
			name:            "POST 500",
			method:          http.MethodPost,
			path:            "/api/auth/register",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "Internal Server Error",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_NothingWrittenLogs200(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 50 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/slow", &logBuf))

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &bytes.Buffer{}))
	}, "withLogging should not recover panics")
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
