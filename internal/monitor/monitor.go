package monitor

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
	"github.com/firefly-engineering/berth-ctl/internal/port"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

// Endpoint describes where a flavor exposes its management interface.
type Endpoint struct {
	// PortKey is the property holding the management port.
	PortKey string
	// Path is appended to the base URL ("/console").
	Path string
}

// Monitor probes the management endpoint of one configuration.
type Monitor struct {
	cfg      *container.Configuration
	endpoint Endpoint
	pinger   health.Pinger
}

// New creates a Monitor.
func New(cfg *container.Configuration, endpoint Endpoint, pinger health.Pinger) *Monitor {
	return &Monitor{cfg: cfg, endpoint: endpoint, pinger: pinger}
}

// Name returns the configuration name.
func (m *Monitor) Name() string {
	return m.cfg.Name()
}

// ManagementPort returns the port to probe.
func (m *Monitor) ManagementPort() (int, error) {
	raw, ok := m.cfg.Property(m.endpoint.PortKey)
	if !ok {
		return 0, fmt.Errorf("%s is not set", m.endpoint.PortKey)
	}
	p, err := port.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.endpoint.PortKey, err)
	}

	offset, set := m.cfg.Property(property.PortOffset)
	offset = strings.TrimSpace(offset)
	if !set || offset == "" || offset == "0" || m.cfg.IsOffsetApplied() {
		return p, nil
	}

	n, err := port.ParseOffset(offset)
	if err != nil {
		return 0, err
	}
	return port.Apply(p, n)
}

// URL returns the management endpoint.
func (m *Monitor) URL() (string, error) {
	p, err := m.ManagementPort()
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme: m.cfg.Properties().GetOrDefault(property.Protocol, "http"),
		Host:   net.JoinHostPort(m.cfg.Properties().GetOrDefault(property.Hostname, "localhost"), strconv.Itoa(p)),
		Path:   m.endpoint.Path,
	}
	return u.String(), nil
}

// IsRunning probes the endpoint once. Any failure, including an invalid
// port configuration, reports false.
func (m *Monitor) IsRunning(ctx context.Context) bool {
	log := logging.ForConfig(m.cfg)
	u, err := m.URL()
	if err != nil {
		log.Debug("cannot build management url", "error", err)
		return false
	}
	ok := m.pinger.Ping(ctx, u)
	log.Debug("probed management url", "url", u, "running", ok)
	return ok
}
