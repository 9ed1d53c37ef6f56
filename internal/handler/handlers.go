package handler

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler/http"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/metrics"
	"github.com/MKhiriev/go-notes/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. m and health may
// be nil.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, health http.HealthChecker, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	renderer, err := http.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	opts := []http.Option{}
	if m != nil {
		opts = append(opts, http.WithMetrics(m))
	}
	if health != nil {
		opts = append(opts, http.WithHealthChecker(health))
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, http.SettingsFromConfig(cfg), logger, opts...),
	}, nil
}
