package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/film-vault/internal/adapter"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the catalog calls made by GetMovies.
const maxConcurrentLookups = 8

// catalogService logs through the request-scoped logger so provider
// failures carry the request's trace_id.
type catalogService struct {
	catalog adapter.CatalogAdapter
}

// NewCatalogService constructs a CatalogService on top of the catalog
// adapter.
func NewCatalogService(catalog adapter.CatalogAdapter) CatalogService {
	return &catalogService{catalog: catalog}
}

// GetMovie implements CatalogService.
func (c *catalogService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	if movieID <= 0 {
		return models.Movie{}, ErrMovieNotFound
	}

	movie, err := c.catalog.GetMovie(ctx, movieID)
	if err != nil {
		if !errors.Is(err, adapter.ErrMovieNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Int64("movie_id", movieID).Msg("catalog lookup failed")
		}
		return models.Movie{}, ErrMovieNotFound
	}

	return movie, nil
}

// SearchMovies implements CatalogService.
func (c *catalogService) SearchMovies(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	movies, err := c.catalog.SearchMovies(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("query", query).Msg("catalog search failed")
		return []models.Movie{}, nil
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}

// PopularMovies implements CatalogService.
func (c *catalogService) PopularMovies(ctx context.Context) []models.Movie {
	movies, err := c.catalog.PopularMovies(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("catalog popular movies failed")
		return []models.Movie{}
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	return movies
}

// GetMovies implements CatalogService. Lookups run on a bounded errgroup;
// a failed lookup leaves a gap that is dropped from the result.
func (c *catalogService) GetMovies(ctx context.Context, movieIDs []int64) []models.Movie {
	found := make([]*models.Movie, len(movieIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, id := range movieIDs {
		g.Go(func() error {
			movie, err := c.catalog.GetMovie(gctx, id)
			if err != nil {
				logger.FromContext(ctx).Debug().Err(err).Int64("movie_id", id).Msg("skipping unresolved movie")
				return nil
			}
			found[i] = &movie
			return nil
		})
	}
	_ = g.Wait()

	movies := make([]models.Movie, 0, len(movieIDs))
	for _, m := range found {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies
}
