package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/models"
)

// moviesPage is the paged envelope TMDB wraps list results in.
type moviesPage struct {
	Page    int            `json:"page"`
	Results []models.Movie `json:"results"`
}

type tmdbAdapter struct {
	client       *utils.HTTPClient
	imageBaseURL string

	logger *logger.Logger
}

// NewTMDBAdapter constructs the TMDB implementation of [CatalogAdapter].
// It normalises the configured base URL and attaches the API key as the
// api_key query parameter of every request. Requests are bounded by
// cfg.Timeout.
//
// Returns an error if the base URL cannot be parsed or the API key is empty.
func NewTMDBAdapter(cfg config.TMDB, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogURL, err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrEmptyAPIKey
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithQueryParam("api_key", cfg.APIKey),
	)

	return &tmdbAdapter{
		client:       client,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetMovie implements [CatalogAdapter]. It GETs /movie/{id}.
func (t *tmdbAdapter) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	var movie models.Movie

	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("movieID", strconv.FormatInt(movieID, 10)).
		SetResult(&movie).
		Get("/movie/{movieID}")
	if err != nil {
		return models.Movie{}, mapTransportError("get movie request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Debug().Err(err).Int64("movie_id", movieID).Msg("catalog get movie failed")
		return models.Movie{}, err
	}

	return t.withPoster(movie), nil
}

// SearchMovies implements [CatalogAdapter]. It GETs /search/movie?query=.
func (t *tmdbAdapter) SearchMovies(ctx context.Context, query string) ([]models.Movie, error) {
	var page moviesPage

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetResult(&page).
		Get("/search/movie")
	if err != nil {
		return nil, mapTransportError("search movies request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Debug().Err(err).Str("query", query).Msg("catalog search failed")
		return nil, err
	}

	return t.withPosters(page.Results), nil
}

// PopularMovies implements [CatalogAdapter]. It GETs /movie/popular.
func (t *tmdbAdapter) PopularMovies(ctx context.Context) ([]models.Movie, error) {
	var page moviesPage

	resp, err := t.client.R().
		SetContext(ctx).
		SetResult(&page).
		Get("/movie/popular")
	if err != nil {
		return nil, mapTransportError("popular movies request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Debug().Err(err).Msg("catalog popular movies failed")
		return nil, err
	}

	return t.withPosters(page.Results), nil
}

func (t *tmdbAdapter) withPoster(m models.Movie) models.Movie {
	m.FullPosterPath = ""
	if m.PosterPath != "" {
		m.FullPosterPath = t.imageBaseURL + "/" + strings.TrimLeft(m.PosterPath, "/")
	}
	return m
}

func (t *tmdbAdapter) withPosters(movies []models.Movie) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		out = append(out, t.withPoster(m))
	}
	return out
}
