// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with HTTP 405 whenever a request path matches a registered
// route but the method is not handled. This handler answers 404 instead,
// hiding the existence of the route from callers that use an unsupported
// method. Subrouters mounted on router inherit it.
//
// If the method does resolve on router (e.g. after a trailing-slash
// redirect) the request is forwarded to the router's normal pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}
