package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route names. Templates and redirects refer to pages by name only.
const (
	RouteHome    = "notes:home"
	RouteList    = "notes:list"
	RouteSuccess = "notes:success"
	RouteAdd     = "notes:add"
	RouteDetail  = "notes:detail"
	RouteEdit    = "notes:edit"
	RouteDelete  = "notes:delete"

	RouteSignup = "users:signup"
	RouteLogin  = "users:login"
	RouteLogout = "users:logout"
)

var routePatterns = map[string]string{
	RouteHome:    "/",
	RouteList:    "/notes/",
	RouteSuccess: "/done/",
	RouteAdd:     "/add/",
	RouteDetail:  "/note/{slug}/",
	RouteEdit:    "/edit/{slug}/",
	RouteDelete:  "/delete/{slug}/",

	RouteSignup: "/auth/signup/",
	RouteLogin:  "/auth/login/",
	RouteLogout: "/auth/logout/",
}

const (
	healthzPath = "/healthz"
	metricsPath = "/metrics"
)

// Reverse builds the path of the named route, substituting args for the
// {param} segments in order. Args are path-escaped.
func Reverse(name string, args ...string) (string, error) {
	pattern, ok := routePatterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	var b strings.Builder
	rest := pattern
	used := 0
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: malformed pattern %q", ErrUnknownRoute, pattern)
		}
		if used == len(args) {
			return "", fmt.Errorf("%w: %q expects more than %d args", ErrReverseArgs, name, len(args))
		}

		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(args[used]))
		used++
		rest = rest[start+end+1:]
	}

	if used != len(args) {
		return "", fmt.Errorf("%w: %q expects %d args, got %d", ErrReverseArgs, name, used, len(args))
	}

	return b.String(), nil
}

// MustReverse is like [Reverse] but panics on error. It is meant for names
// and arg counts fixed at compile time.
func MustReverse(name string, args ...string) string {
	path, err := Reverse(name, args...)
	if err != nil {
		panic(err)
	}
	return path
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}
	router.Use(h.withIdentity)

	router.Get(healthzPath, h.healthz)
	if h.metrics != nil {
		router.Method(http.MethodGet, metricsPath, h.metrics.Handler())
	}

	// public pages
	router.Group(func(r chi.Router) {
		r.Get(routePatterns[RouteHome], h.home)

		r.Get(routePatterns[RouteSignup], h.signupPage)
		r.Post(routePatterns[RouteSignup], h.signup)
		r.Get(routePatterns[RouteLogin], h.loginPage)
		r.Post(routePatterns[RouteLogin], h.login)
		r.Get(routePatterns[RouteLogout], h.logout)
		r.Post(routePatterns[RouteLogout], h.logout)
	})

	// pages for logged-in users, see loginRequiredRoutes; per-note ownership
	// is checked by the service
	router.Group(func(r chi.Router) {
		r.Use(h.loginRequired)

		r.Get(routePatterns[RouteList], h.listNotes)
		r.Get(routePatterns[RouteSuccess], h.success)
		r.Get(routePatterns[RouteAdd], h.addNotePage)
		r.Post(routePatterns[RouteAdd], h.addNote)
		r.Get(routePatterns[RouteDetail], h.noteDetail)
		r.Get(routePatterns[RouteEdit], h.editNotePage)
		r.Post(routePatterns[RouteEdit], h.editNote)
		r.Get(routePatterns[RouteDelete], h.deleteNotePage)
		r.Post(routePatterns[RouteDelete], h.deleteNote)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	return router
}
