// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the values used when no other source sets a field.
// Secrets (token sign key, TMDB API key) have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "v1",
			LogLevel: "info",
		},
		Auth: Auth{
			TokenIssuer:   "FilmVault",
			TokenAudience: "FilmVaultUsers",
			TokenDuration: 30 * time.Minute,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:        "0.0.0.0:8080",
			RequestTimeout:     30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			AuthRateLimit:      1,
			AuthRateBurst:      5,
		},
		Adapter: Adapter{
			TMDB: TMDB{
				BaseURL:      "https://api.themoviedb.org/3",
				ImageBaseURL: "https://image.tmdb.org/t/p/w500",
				Timeout:      10 * time.Second,
			},
		},
	}
}
