// Package server runs the HTTP API server.
//
// It owns the server lifecycle: listening, serving, reacting to SIGINT,
// SIGTERM and SIGQUIT, and draining in-flight requests within the
// configured shutdown timeout.
package server
