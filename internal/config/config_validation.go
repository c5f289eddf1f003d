// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failing rule is reported; the returned error joins them and each
// one wraps the sentinel of its group (e.g. [ErrInvalidAuthConfigs]).
func (cfg *StructuredConfig) validate() error {
	var errs []error
	invalid := func(group error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", group, fmt.Sprintf(format, args...)))
	}

	if cfg.App.Version == "" {
		invalid(ErrInvalidAppConfigs, "version is empty")
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		invalid(ErrInvalidAppConfigs, "unknown log level %q", cfg.App.LogLevel)
	}

	if cfg.Auth.TokenSignKey == "" {
		invalid(ErrInvalidAuthConfigs, "token sign key is empty")
	}
	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
		invalid(ErrInvalidAuthConfigs, "token issuer and audience are required")
	}
	if cfg.Auth.TokenDuration <= 0 {
		invalid(ErrInvalidAuthConfigs, "token duration must be positive")
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		invalid(ErrInvalidStorageConfigs, "unsupported driver %q", cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		invalid(ErrInvalidStorageConfigs, "dsn is empty")
	}

	if cfg.Server.HTTPAddress == "" {
		invalid(ErrInvalidServerConfigs, "address is empty")
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		invalid(ErrInvalidServerConfigs, "request and shutdown timeouts must be positive")
	}
	if cfg.Server.AuthRateLimit == 0 {
		invalid(ErrInvalidServerConfigs, "auth rate limit is zero, use a negative value to disable it")
	}
	if cfg.Server.AuthRateLimit > 0 && cfg.Server.AuthRateBurst <= 0 {
		invalid(ErrInvalidServerConfigs, "auth rate burst must be positive")
	}

	if cfg.Adapter.TMDB.BaseURL == "" || cfg.Adapter.TMDB.ImageBaseURL == "" {
		invalid(ErrInvalidAdapterConfigs, "tmdb base urls are required")
	}
	if cfg.Adapter.TMDB.APIKey == "" {
		invalid(ErrInvalidAdapterConfigs, "tmdb api key is empty")
	}
	if cfg.Adapter.TMDB.Timeout <= 0 {
		invalid(ErrInvalidAdapterConfigs, "tmdb timeout must be positive")
	}

	return errors.Join(errs...)
}
