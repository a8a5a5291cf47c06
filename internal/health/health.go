package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"

	"github.com/firefly-engineering/berth-ctl/internal/logging"
)

// Status represents the readiness of a container
type Status string

const (
	StatusReady      Status = "ready"
	StatusNotReady   Status = "not-ready"
	StatusNoEndpoint Status = "no-endpoint"

	// DefaultPingTimeout bounds a single probe.
	DefaultPingTimeout = 5 * time.Second
)

// maxDrain caps how much of a response body is read before closing it.
const maxDrain = 64 << 10

// Pinger checks whether an endpoint is reachable.
type Pinger interface {
	Ping(ctx context.Context, url string) bool
}

// HTTPPinger probes endpoints with HTTP GET requests.
type HTTPPinger struct {
	client *http.Client
}

// NewHTTPPinger creates a pinger whose requests time out after timeout.
func NewHTTPPinger(timeout time.Duration) *HTTPPinger {
	client := cleanhttp.DefaultClient()
	client.Timeout = timeout
	return &HTTPPinger{client: client}
}

// Ping reports whether a GET of url returns a 2xx status.
func (p *HTTPPinger) Ping(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logging.Debug("invalid probe url", "url", url, "error", err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		logging.Debug("probe failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("probe returned non-success status", "url", url, "status", resp.StatusCode)
		return false
	}
	return true
}

// FormatDuration renders d in a compact human form ("45s", "3m", "1h 5m").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		hours := int(d.Hours())
		mins := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}
