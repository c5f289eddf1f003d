package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withCORS())
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.index)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/movies", func(r chi.Router) {
		r.Get("/search", h.searchMovies)
		r.Get("/popular", h.popularMovies)
		r.Get("/{movieID}", h.getMovie)
	})

	// routes scoped to the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/api/users/profile", h.getProfile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Delete("/api/users/profile", h.deleteProfile)

		r.Mount("/api/savedmovies", h.collectionRouter(h.services.SavedMoviesService))
		r.Mount("/api/watchlist", h.collectionRouter(h.services.WatchlistService))
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	})
}
