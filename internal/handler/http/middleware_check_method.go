// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// loginRequiredRoutes are the named routes registered behind
// [Handler.loginRequired].
var loginRequiredRoutes = []string{
	RouteList,
	RouteSuccess,
	RouteAdd,
	RouteDetail,
	RouteEdit,
	RouteDelete,
}

// requiresLogin reports whether pattern belongs to one of
// loginRequiredRoutes.
func requiresLogin(pattern string) bool {
	for _, name := range loginRequiredRoutes {
		if routePatterns[name] == pattern {
			return true
		}
	}
	return false
}

// checkHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request reaching it has a routed path but a method nobody registered for
// that path. Instead of chi's 405 the caller gets the not-found page. Paths of
// pages for logged-in users go through loginRequired first, so an anonymous
// caller is redirected to the login page whatever the method.
//
// Every page route is registered for GET, so the route pattern is resolved
// with a GET lookup; it is empty for paths that are not pages.
func (h *Handler) checkHTTPMethod(router chi.Routes) http.HandlerFunc {
	notFound := http.HandlerFunc(h.notFound)
	gated := h.loginRequired(notFound)

	return func(w http.ResponseWriter, r *http.Request) {
		pattern := router.Find(chi.NewRouteContext(), http.MethodGet, r.URL.Path)
		if requiresLogin(pattern) {
			gated.ServeHTTP(w, r)
			return
		}

		notFound.ServeHTTP(w, r)
	}
}
