package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single liveness probe.
const DefaultTimeout = 5 * time.Second

// Prober checks whether a published report URL can be served.
type Prober interface {
	Reachable(ctx context.Context, url string) bool
}

// HTTPProber issues a single GET per probe. Any transport error, timeout or
// status of 400 and above means the URL is not reachable. It never retries.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPProber returns a prober with its own pooled client. A non-positive
// timeout falls back to DefaultTimeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProber{
		client:  cleanhttp.DefaultPooledClient(),
		timeout: timeout,
	}
}

func (p *HTTPProber) Reachable(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logger := log.WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.WithError(err).Warn("invalid report URL")
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		logger.WithError(err).Warn("report pages not reachable")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= http.StatusBadRequest {
		logger.WithField("status", resp.StatusCode).Warn("report pages not reachable")
		return false
	}

	logger.WithField("status", resp.StatusCode).Debug("report pages reachable")
	return true
}
