package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// sessionCookieName is the cookie that carries the signed session token.
const sessionCookieName = "sessionid"

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageSignup, ViewContext{ctxForm: Form{Data: models.SignupForm{}}})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := models.SignupForm{
		Username:  r.PostForm.Get(validators.FieldUsername),
		Password1: r.PostForm.Get(validators.FieldPassword1),
		Password2: r.PostForm.Get(validators.FieldPassword2),
	}

	user, err := h.services.AuthService.Register(r.Context(), form)
	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusOK, PageSignup, ViewContext{
			ctxForm: Form{Data: models.SignupForm{Username: form.Username}, Errors: fieldErrors},
		})
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user signed up")
	h.redirect(w, r, RouteLogin)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageLogin, ViewContext{
		ctxForm: Form{Data: models.LoginForm{}},
		ctxNext: r.URL.Query().Get(ctxNext),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := models.LoginForm{
		Username: r.PostForm.Get(validators.FieldUsername),
		Password: r.PostForm.Get(validators.FieldPassword),
	}
	next := r.FormValue(ctxNext)

	token, err := h.services.AuthService.Login(r.Context(), form)
	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusOK, PageLogin, ViewContext{
			ctxForm: Form{Data: models.LoginForm{Username: form.Username}, Errors: fieldErrors},
			ctxNext: next,
		})
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	http.Redirect(w, r, utils.SafeNextPath(next, MustReverse(RouteHome)), http.StatusFound)
}

// logout answers both GET and POST. A missing or stale session is not an
// error: the page is shown either way.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	r = r.WithContext(utils.WithIdentity(r.Context(), models.Anonymous()))
	h.render(w, r, http.StatusOK, PageLogout, nil)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	expires := time.Unix(token.ExpiresAt, 0)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   h.settings.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.settings.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the session token from the cookie or, for API
// clients, from an "Authorization: Bearer" header.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token
		}
	}
	return ""
}
