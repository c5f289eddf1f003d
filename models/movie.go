// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Movie is the metadata of a single title as served by the catalog provider.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`

	// FullPosterPath is derived from PosterPath and the configured image
	// base URL. Empty when the provider has no poster for the title.
	FullPosterPath string `json:"full_poster_path"`
}
