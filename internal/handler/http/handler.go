package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/metrics"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// healthStatus is the JSON body of the health endpoint.
type healthStatus struct {
	Status string `json:"status"`
}

// HealthChecker reports whether the backing storage is reachable.
// *sql.DB satisfies it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Settings are the request-handling knobs taken from the configuration. The
// session cookie lives as long as the token it carries.
type Settings struct {
	// SecureCookies marks the session cookie as Secure.
	SecureCookies bool

	// RequestTimeout is the deadline put on every request context.
	RequestTimeout time.Duration
}

// SettingsFromConfig extracts the handler settings from cfg.
func SettingsFromConfig(cfg config.StructuredConfig) Settings {
	return Settings{
		SecureCookies:  cfg.App.SecureCookies,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
}

type Handler struct {
	services *service.Services
	renderer Renderer
	settings Settings

	metrics *metrics.Metrics
	health  HealthChecker

	logger *logger.Logger
}

// Option configures optional collaborators of a [Handler].
type Option func(*Handler)

// WithMetrics instruments every request and serves the registry on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithHealthChecker makes /healthz ping hc.
func WithHealthChecker(hc HealthChecker) Option {
	return func(h *Handler) {
		h.health = hc
	}
}

func NewHandler(services *service.Services, renderer Renderer, settings Settings, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		renderer: renderer,
		settings: settings,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}

// identity returns the caller resolved by withIdentity. It is the only place
// handlers read the identity from the request context.
func identity(r *http.Request) models.Identity {
	return utils.GetIdentityFromContext(r.Context())
}

// render executes page into a buffer first so that a template error still
// produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data ViewContext) {
	if data == nil {
		data = ViewContext{}
	}
	data[ctxUser] = identity(r)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("template rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, name string, args ...string) {
	http.Redirect(w, r, MustReverse(name, args...), http.StatusFound)
}

// respondError maps err to a status. Not-found and denied answers render the
// 404 page; everything else is logged and gets a generic body.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusNotFound {
		h.notFound(w, r)
		return
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, http.StatusText(status), status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, PageNotFound, nil)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.PingContext(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("health check failed")
			_, _ = utils.WriteJSON(w, healthStatus{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}

	_, _ = utils.WriteJSON(w, healthStatus{Status: "ok"}, http.StatusOK)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageHome, nil)
}

func (h *Handler) success(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageSuccess, nil)
}
