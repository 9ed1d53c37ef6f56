package adapter

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const healthPath = "/healthz"

type HTTPClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

type httpClient struct {
	client *resty.Client
}

func NewHTTPClient(cfg HTTPClientConfig) ServerClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= 500
		})

	return &httpClient{client: cli}
}

func (h *httpClient) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// BaseURLFromAddress turns a listen address such as ":8080" or
// "0.0.0.0:8080" into a URL reachable from the same host.
func BaseURLFromAddress(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "http://" + address
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
