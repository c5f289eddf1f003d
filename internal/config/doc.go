// Package config provides configuration loading, merging, and validation
// facilities for the FilmVault API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, including a .env file in the working directory
//     (real environment variables take precedence over the file)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
