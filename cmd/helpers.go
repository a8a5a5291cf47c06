package cmd

import (
	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/health"
)

// paths returns the default paths configuration.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// loadContainer loads a container by definition name or file path.
func loadContainer(arg string) (*app.Container, error) {
	return app.Default.Load(arg)
}

// loadContainers loads the named containers, or every definition when
// no names are given.
func loadContainers(args []string) ([]*app.Container, error) {
	if len(args) == 0 {
		return app.Default.LoadAll()
	}
	containers := make([]*app.Container, 0, len(args))
	for _, arg := range args {
		c, err := loadContainer(arg)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	return containers, nil
}

func formatStatus(status health.Status) string {
	switch status {
	case health.StatusReady:
		return "✓ ready"
	case health.StatusNotReady:
		return "✗ not ready"
	case health.StatusNoEndpoint:
		return "○ no endpoint"
	default:
		return string(status)
	}
}

func boolStatus(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
