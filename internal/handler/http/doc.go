// Package http implements the REST API of FilmVault.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging, response
// compression, rate limiting of the auth endpoints and bearer-token
// authentication are handled in this package before requests are delegated
// to the service layer. Error-to-status mapping lives in errors_mapper.go.
package http
