package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// withIdentity resolves the session token of the request into a
// [models.Identity] and stores it in the request context under
// [utils.IdentityCtxKey].
//
// The middleware never rejects a request. An expired, forged or revoked
// token makes the caller anonymous and the stale cookie is cleared. When the
// revocation check itself fails, the caller is treated as anonymous for this
// request only and the cookie is kept.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity := models.Anonymous()

		if token := sessionToken(r); token != "" {
			parsed, err := h.services.AuthService.ParseSession(ctx, token)
			switch {
			case err == nil:
				identity = parsed
			case errors.Is(err, service.ErrInvalidSession):
				logger.FromRequest(r).Debug().Msg("stale session token dropped")
				h.clearSessionCookie(w)
			default:
				logger.FromRequest(r).Err(err).Msg("session check failed")
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// loginRequired redirects anonymous callers to the login page, passing the
// requested URL in the "next" query parameter.
func (h *Handler) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !identity(r).IsAuthenticated() {
			target := utils.LoginRedirectURL(MustReverse(RouteLogin), r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
