package service

import (
	"fmt"

	"github.com/MKhiriev/film-vault/internal/adapter"
	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/crypto"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	CatalogService CatalogService
	AppInfoService AppInfoService

	SavedMoviesService CollectionService
	WatchlistService   CollectionService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher()

	tokenService, err := NewTokenService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, tokenService, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		UserService:    NewUserService(storages.UserRepository, hasher, logger),
		CatalogService: NewCatalogService(catalog),
		AppInfoService: appInfoService,

		SavedMoviesService: NewCollectionValidationService().Wrap(
			NewCollectionService(models.SavedMovies, storages.CollectionRepository, logger),
		),
		WatchlistService: NewCollectionValidationService().Wrap(
			NewCollectionService(models.Watchlist, storages.CollectionRepository, logger),
		),
	}, nil
}
